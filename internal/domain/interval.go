package domain

import "time"

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Строгие неравенства: соприкасающиеся границы (aEnd == bStart) пересечением не считаются
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
