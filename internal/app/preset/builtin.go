package preset

import "github.com/osa030/breathbox/internal/domain/breath"

func init() {
	Register("box", func() Preset {
		return Preset{
			Name:        "box",
			Description: "Equal inhale, hold and exhale",
			Values:      breath.Values{Inhale: 4, Hold: 4, Exhale: 4, Cycles: 4},
		}
	})
	Register("relax", func() Preset {
		return Preset{
			Name:        "relax",
			Description: "4-7-8 breathing for winding down",
			Values:      breath.Values{Inhale: 4, Hold: 7, Exhale: 8, Cycles: 4},
		}
	})
	Register("calm", func() Preset {
		return Preset{
			Name:        "calm",
			Description: "Long exhale, no hold",
			Values:      breath.Values{Inhale: 4, Hold: 0, Exhale: 6, Cycles: 6},
		}
	})
	Register("coherent", func() Preset {
		return Preset{
			Name:        "coherent",
			Description: "Five seconds in, five seconds out",
			Values:      breath.Values{Inhale: 5, Hold: 0, Exhale: 5, Cycles: 6},
		}
	})
}
