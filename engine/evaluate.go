package engine

import (
	"loa/board"
	"loa/square"
)

const (
	scoreEdgePenalty  int32 = 100
	scoreShapePenalty int32 = 100
	scoreMomentum     int32 = 50

	// regionMinorShare is the share of a color's pieces its largest region
	// must hold to avoid the consolidation penalty; regionMajorShare is the
	// share above which the position is close to connecting.
	regionMinorShare = 0.4
	regionMajorShare = 0.8

	// maxRegions is the fragmentation threshold.
	maxRegions = 3
)

// Zone bonuses are drawn from small fixed bands through the injected random
// source so the evaluation is not perfectly deterministic and exploitable.
var (
	bandLow  = [5]int32{1, 2, 3, 4, 5}
	bandMid  = [5]int32{20, 25, 30, 35, 40}
	bandHigh = [5]int32{90, 95, 100, 105, 110}
)

func (e *Engine) pick(band [5]int32) int32 {
	return band[e.rand.Intn(len(band))]
}

// heuristic is the default leaf evaluation: positive favors White, negative
// favors Black. Terminal positions collapse to the winning magnitude (draws
// score 0). Non-terminal positions combine the zone and region-shape scores
// of both colors with a momentum bonus against the previous evaluation.
func (e *Engine) heuristic(b *board.Board) int32 {
	if b.GameOver() {
		switch b.Winner() {
		case board.ResultWhiteWins:
			return ScoreWinning
		case board.ResultBlackWins:
			return -ScoreWinning
		default:
			return 0
		}
	}

	raw := e.positionScore(b)
	score := raw

	// Momentum: positions improving on the previous evaluation, in the root
	// side's favor, gain a secondary bonus of randomized magnitude. This
	// makes the evaluator stateful and move-order dependent.
	improved := (e.rootSide == board.PieceWhite && raw > e.lastScore) ||
		(e.rootSide == board.PieceBlack && raw < e.lastScore)
	if improved {
		bonus := scoreMomentum
		if e.rand.Intn(11) < 5 {
			bonus = scoreMomentum / 2
		}
		if e.rootSide == board.PieceWhite {
			score += bonus
		} else {
			score -= bonus
		}
	}
	e.lastScore = raw

	return score
}

// positionScore is the stateless part of the heuristic.
func (e *Engine) positionScore(b *board.Board) int32 {
	return e.sideScore(b, board.PieceWhite) - e.sideScore(b, board.PieceBlack)
}

// sideScore accumulates the color's zone-weighted placement score and its
// region-shape adjustments, as a positive magnitude. White scores along
// files, Black along ranks; three concentric bands grade toward the center
// and the outermost lines of the scoring axis are penalized.
func (e *Engine) sideScore(b *board.Board, p board.Piece) int32 {
	var total int32
	for _, sq := range b.Squares(p) {
		axis, cross := sq.X(), sq.Y()
		if p == board.PieceBlack {
			axis, cross = sq.Y(), sq.X()
		}
		if square.FileB <= axis && axis <= square.FileG {
			total += e.pick(bandLow)
			if square.FileC <= axis && axis <= square.FileF {
				total += e.pick(bandMid)
				if square.Rank3 <= cross && cross <= square.Rank5 {
					total += e.pick(bandHigh)
				}
			}
		} else {
			total -= scoreEdgePenalty
		}
	}

	regions := b.RegionSizes(p)
	if len(regions) == 0 {
		return total
	}
	pieces := 0
	for _, size := range regions {
		pieces += size
	}
	largest := regions[0]
	if float64(largest) < regionMinorShare*float64(pieces) {
		total -= scoreShapePenalty
	}
	if len(regions) > maxRegions {
		total -= scoreShapePenalty
	}
	if float64(largest) > regionMajorShare*float64(pieces) {
		// Holding a large majority is only worth something when the
		// remainder is not scattered.
		if len(regions) > maxRegions {
			total -= scoreMomentum
		} else {
			total += e.pick(bandHigh)
		}
	}
	if len(regions) == 2 {
		// Two clusters are often one move from connecting.
		total += e.pick(bandMid)
	}

	return total
}
