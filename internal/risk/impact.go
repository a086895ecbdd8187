package risk

// Physiologically plausible bounds. Readings outside these ranges are almost
// certainly measurement or entry errors, so they are treated as unknown
// rather than scored. Form validation upstream should already reject them;
// the engine is the last line of defense.
const (
	minPlausibleSystolic  = 50
	maxPlausibleSystolic  = 300
	minPlausibleDiastolic = 30
	maxPlausibleDiastolic = 200
	minPlausibleHeartRate = 20
	maxPlausibleHeartRate = 300
	minPlausibleSpO2      = 50
	maxPlausibleSpO2      = 100
	minPlausibleTempC     = 30.0
	maxPlausibleTempC     = 45.0
)

// ImpactScore converts vital-sign abnormality and acute-symptom severity
// into a 1-5 physiological impact score. Each vital present is classified
// into a severity tier against clinical normal ranges and the overall score
// is the maximum tier observed. Missing vitals contribute nothing: an input
// with no vitals measured scores the baseline 1.
func ImpactScore(in PatientInput) (int, Level) {
	tier := 1

	if in.SystolicBP != nil {
		tier = maxTier(tier, systolicTier(*in.SystolicBP))
	}
	if in.DiastolicBP != nil {
		tier = maxTier(tier, diastolicTier(*in.DiastolicBP))
	}
	if in.HeartRate != nil {
		tier = maxTier(tier, heartRateTier(*in.HeartRate))
	}
	if in.OxygenSaturation != nil {
		tier = maxTier(tier, oxygenTier(*in.OxygenSaturation))
	}
	if in.Temperature != nil {
		tier = maxTier(tier, temperatureTier(*in.Temperature))
	}

	tier = maxTier(tier, acuteSymptomTier(in))

	score := clampScore(tier)
	return score, LevelForScore(score)
}

// maxTier ignores tier 0 (implausible reading, treated as unmeasured).
func maxTier(current, candidate int) int {
	if candidate > current {
		return candidate
	}
	return current
}

func systolicTier(v int) int {
	if v < minPlausibleSystolic || v > maxPlausibleSystolic {
		return 0
	}
	switch {
	case v >= 180:
		return 5
	case v >= 160:
		return 4
	case v >= 140:
		return 3
	case v >= 120:
		return 2
	case v >= 90:
		return 1
	default:
		return 4 // hypotension
	}
}

func diastolicTier(v int) int {
	if v < minPlausibleDiastolic || v > maxPlausibleDiastolic {
		return 0
	}
	switch {
	case v >= 110:
		return 5
	case v >= 100:
		return 4
	case v >= 90:
		return 3
	case v >= 80:
		return 2
	case v >= 60:
		return 1
	default:
		return 3 // low diastolic pressure
	}
}

func heartRateTier(v int) int {
	if v < minPlausibleHeartRate || v > maxPlausibleHeartRate {
		return 0
	}
	switch {
	case v > 130:
		return 5
	case v > 120:
		return 4
	case v > 110:
		return 3
	case v > 100:
		return 2
	case v >= 60:
		return 1
	case v >= 50:
		return 2
	case v >= 40:
		return 3
	default:
		return 5 // profound bradycardia
	}
}

// oxygenTier: SpO2 >= 95% is normal, 90-94% moderate, below 90% severe.
func oxygenTier(v int) int {
	if v < minPlausibleSpO2 || v > maxPlausibleSpO2 {
		return 0
	}
	switch {
	case v >= 95:
		return 1
	case v >= 90:
		return 3
	default:
		return 5
	}
}

func temperatureTier(v float64) int {
	if v < minPlausibleTempC || v > maxPlausibleTempC {
		return 0
	}
	switch {
	case v >= 40.0:
		return 4
	case v >= 39.0:
		return 3
	case v >= 38.0:
		return 2
	case v >= 36.1:
		return 1
	case v >= 35.0:
		return 2
	default:
		return 4 // hypothermia
	}
}

// acuteSymptomTier folds the most severe acute symptoms into impact. Severe
// breathlessness and loss of consciousness indicate physiological compromise
// even when no vitals were measured.
func acuteSymptomTier(in PatientInput) int {
	tier := 1
	switch in.ShortnessOfBreath {
	case BreathSevere:
		tier = maxTier(tier, 4)
	case BreathModerate:
		tier = maxTier(tier, 2)
	default:
	}
	if in.Syncope || in.Fainting {
		tier = maxTier(tier, 3)
	}
	return tier
}
