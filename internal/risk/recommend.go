package risk

// ActionForCategory maps a risk category to its care directive. The mapping
// is keyed strictly off the category; individual findings never change it.
func ActionForCategory(cat RiskCategory) Action {
	switch cat {
	case CategoryLow:
		return ActionSelfCare
	case CategoryMild:
		return ActionConsult
	case CategoryModerate:
		return ActionSeekCare
	case CategoryHigh:
		return ActionUrgent
	default:
		return ActionEmergency
	}
}

// Recommendations builds the ordered advice list: category-level lines
// first, then vital-sign call-outs, then risk-factor advice. The order is
// fixed so identical input always yields an identical list. Absent optional
// fields simply suppress their line.
func Recommendations(cat RiskCategory, in PatientInput) []string {
	recs := append([]string{}, categoryRecommendations(cat)...)
	recs = append(recs, vitalRecommendations(in)...)
	recs = append(recs, riskFactorRecommendations(in.RiskFactors)...)
	return recs
}

func categoryRecommendations(cat RiskCategory) []string {
	switch cat {
	case CategoryLow:
		return []string{
			"Your current cardiovascular risk is low. Maintain a heart-healthy lifestyle with regular exercise and a balanced diet.",
			"Repeat a self-assessment if new symptoms appear.",
		}
	case CategoryMild:
		return []string{
			"Schedule a check-up with your doctor within the next 48 hours.",
			"Keep a diary of your symptoms, noting when they occur and how long they last.",
		}
	case CategoryModerate:
		return []string{
			"Seek medical attention within the next 6 to 24 hours.",
			"Avoid strenuous physical activity until you have been evaluated.",
		}
	case CategoryHigh:
		return []string{
			"Seek urgent medical attention now; do not wait for symptoms to pass.",
			"Do not drive yourself; ask someone to accompany you.",
		}
	default: // critical
		return []string{
			"Call emergency services or go to the nearest emergency room immediately.",
			"Stay seated or lying down and avoid any exertion until help arrives.",
		}
	}
}

// vitalRecommendations surfaces per-vital call-outs in a fixed order: blood
// pressure, heart rate, oxygen saturation, temperature.
func vitalRecommendations(in PatientInput) []string {
	var recs []string

	highBP := (in.SystolicBP != nil && systolicTier(*in.SystolicBP) >= 3 && *in.SystolicBP >= 140) ||
		(in.DiastolicBP != nil && diastolicTier(*in.DiastolicBP) >= 3 && *in.DiastolicBP >= 90)
	lowBP := in.SystolicBP != nil && *in.SystolicBP >= minPlausibleSystolic && *in.SystolicBP < 90
	if highBP {
		recs = append(recs, "Your blood pressure reading is elevated. Monitor it regularly and discuss it with your doctor.")
	} else if lowBP {
		recs = append(recs, "Your blood pressure reading is low. Rise slowly from sitting or lying positions and mention it to your doctor.")
	}

	if in.HeartRate != nil && *in.HeartRate <= maxPlausibleHeartRate {
		switch {
		case *in.HeartRate > 100:
			recs = append(recs, "Your heart rate is elevated. Rest for 15 minutes and measure again.")
		case *in.HeartRate < 50 && *in.HeartRate >= minPlausibleHeartRate:
			recs = append(recs, "Your heart rate is low. If you feel dizzy or faint, seek medical advice.")
		}
	}

	if in.OxygenSaturation != nil && oxygenTier(*in.OxygenSaturation) >= 3 {
		recs = append(recs, "Your oxygen saturation is below the normal range. If you feel breathless, seek medical help.")
	}

	if in.Temperature != nil && *in.Temperature >= 38.0 && *in.Temperature <= maxPlausibleTempC {
		recs = append(recs, "You have a fever. Stay hydrated and monitor your temperature.")
	}

	return recs
}

// riskFactorRecommendations emits one line per active chronic risk factor in
// a fixed order, not reordered by severity.
func riskFactorRecommendations(rf RiskFactors) []string {
	var recs []string
	if rf.Smoking {
		recs = append(recs, "Quitting smoking is the single most effective step to reduce your cardiovascular risk.")
	}
	if rf.Hypertension {
		recs = append(recs, "Keep your blood pressure under control with prescribed medication and reduced salt intake.")
	}
	if rf.Diabetes {
		recs = append(recs, "Maintain good blood sugar control; diabetes accelerates cardiovascular disease.")
	}
	if rf.HighCholesterol {
		recs = append(recs, "Review your lipid profile with your doctor and follow dietary guidance.")
	}
	if rf.Obesity {
		recs = append(recs, "Gradual weight reduction lowers the strain on your heart.")
	}
	if rf.ChronicKidneyDisease {
		recs = append(recs, "Chronic kidney disease raises cardiovascular risk; keep regular nephrology follow-ups.")
	}
	if rf.FamilyHistory {
		recs = append(recs, "With a family history of heart disease, schedule regular preventive check-ups.")
	}
	if rf.PreviousHeartDisease {
		recs = append(recs, "Follow up regularly with your cardiologist and take prescribed medication consistently.")
	}
	return recs
}
