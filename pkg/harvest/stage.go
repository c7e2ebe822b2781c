package harvest

// StageFromDAS maps days-after-sowing onto a coarse growth stage using the
// fraction of the crop's maturity period elapsed.
func StageFromDAS(das, maturityDays int) string {
	if das < 0 {
		return "Planned"
	}
	if maturityDays <= 0 {
		maturityDays = 120
	}
	progress := float64(das) / float64(maturityDays)
	switch {
	case progress < 0.15:
		return "Germination/Seedling"
	case progress < 0.45:
		return "Vegetative Growth"
	case progress < 0.75:
		return "Flowering/Reproductive"
	case progress < 1.0:
		return "Maturity/Fruiting"
	default:
		return "Harvest Ready"
	}
}
