package schedule

import (
	"github.com/rvalero/agenda-cli/internal/domain"
)

// AnytimeLengthMinutes is the fixed visual duration of an anytime block.
// Anytime placements are advisory, not reservations: several may land in
// the same gap and none of them shrinks it.
const AnytimeLengthMinutes = 60

// PlaceAnytime deterministically assigns anytime tasks to the day's gaps:
// the i-th task goes to the start of gaps[i mod len(gaps)] regardless of
// the gap's true length. When no gaps exist every task lands on the fixed
// fallback slot. Re-running with the same inputs always yields the same
// assignment, so repeated renders never flicker.
func PlaceAnytime(anytime []*domain.Task, gaps []domain.Gap, l Layout) []domain.PlacementBlock {
	if len(anytime) == 0 {
		return nil
	}

	total := l.WindowMinutes()
	blocks := make([]domain.PlacementBlock, 0, len(anytime))

	for i, task := range anytime {
		start := l.FallbackStartMinutes
		if len(gaps) > 0 {
			start = gaps[i%len(gaps)].StartMinutes
		}

		offset := start - l.windowStart()
		if offset < 0 {
			offset = 0
		}
		if offset > total {
			offset = total
		}
		length := AnytimeLengthMinutes
		if offset+length > total {
			length = total - offset
		}

		height := float64(length) / float64(total)
		if height < l.MinVisualFraction {
			height = l.MinVisualFraction
		}

		blocks = append(blocks, domain.PlacementBlock{
			TaskID:        task.ID,
			Task:          task,
			StartMinutes:  offset,
			LengthMinutes: length,
			IsAnytime:     true,
			Top:           float64(offset) / float64(total),
			Height:        height,
		})
	}

	return blocks
}
