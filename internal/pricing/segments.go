package pricing

import "hotel_pricing/internal/domain"

// Segments averages rate and occupancy per category, in the order each
// category first appears in the reference set.
func Segments(refs []domain.ReferenceHotel) []domain.Segment {
	idx := map[domain.Category]int{}
	out := make([]domain.Segment, 0, len(refs))
	for _, r := range refs {
		i, ok := idx[r.Category]
		if !ok {
			i = len(out)
			idx[r.Category] = i
			out = append(out, domain.Segment{Category: r.Category})
		}
		out[i].AverageRate += r.AverageDailyRate
		out[i].AverageOccupancy += r.OccupancyRate
		out[i].Count++
	}
	for i := range out {
		n := float64(out[i].Count)
		out[i].AverageRate /= n
		out[i].AverageOccupancy /= n
	}
	return out
}
