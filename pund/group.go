package pund

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ferrolab/pundkit/signal"
)

// groupPulses partitions the ordered pulse list into consecutive
// quintuples and validates the voltage-sign pattern of each. Trailing
// pulses that do not complete a quintuple are discarded. Fewer than five
// pulses yield zero groups and no error; the caller then returns the
// table with its derived columns at their defaults.
func groupPulses(voltage []float64, pulses []Pulse, log *zap.Logger) ([]PulseGroup, error) {
	count := len(pulses) / rolesPerGroup
	if count == 0 {
		log.Debug("not enough pulses for a PUND group", zap.Int("pulses", len(pulses)))

		return nil, nil
	}

	signOf := func(p Pulse) int {
		var s float64
		for _, v := range voltage[p.Start:p.End] {
			s += v
		}

		return signal.Sign(s)
	}

	groups := make([]PulseGroup, 0, count)
	for g := 0; g < count; g++ {
		q := pulses[g*rolesPerGroup : (g+1)*rolesPerGroup]
		grp := PulseGroup{Poling: q[0], P: q[1], U: q[2], N: q[3], D: q[4]}

		pSign := signOf(grp.P)
		ok := pSign != 0 &&
			signOf(grp.Poling) == -pSign &&
			signOf(grp.U) == pSign &&
			signOf(grp.N) == -pSign &&
			signOf(grp.D) == -pSign
		if !ok {
			return nil, fmt.Errorf("%w: group %d", ErrUnexpectedPulseOrdering, g+1)
		}
		groups = append(groups, grp)
	}

	log.Debug("grouped pulses",
		zap.Int("groups", count),
		zap.Int("discarded_trailing", len(pulses)%rolesPerGroup))

	return groups, nil
}

// markRoles fills the Polarity and PulseIndex columns from the validated
// groups. Pulse numbering is sequential over grouped pulses only, so
// trailing discarded pulses stay at 0 like any other non-pulse sample.
func markRoles(res *Result) {
	for gi, grp := range res.Groups {
		base := int32(gi * rolesPerGroup)
		ordered := [rolesPerGroup]Pulse{grp.Poling, grp.P, grp.U, grp.N, grp.D}
		for ri, p := range ordered {
			role := rolePoling + int32(ri)
			var pol int8
			switch role {
			case roleP, roleU:
				pol = 1
			case roleN, roleD:
				pol = -1
			}
			for i := p.Start; i < p.End; i++ {
				res.PulseIndex[i] = base + role
				res.Polarity[i] = pol
			}
		}
	}
}
