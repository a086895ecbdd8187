package risk

// Symptom and history point weights. More or worse evidence never lowers the
// total, so the banded score is monotonic in every input field.
const (
	pointsChestPainNonAnginal = 1
	pointsChestPainAtypical   = 2
	pointsChestPainTypical    = 3
	pointsDurationProlonged   = 1 // 10 minutes or more
	pointsDurationSustained   = 2 // 30 minutes or more
	pointsRadiation           = 1
	pointsExertional          = 2
	pointsBreathMild          = 1
	pointsBreathModerate      = 2
	pointsBreathSevere        = 3
	pointsSyncope             = 2
	pointsNeurological        = 2
	pointsMinorSymptom        = 1
	pointsPriorHeartDisease   = 2
	pointsRiskFactor          = 1
	pointsElderly             = 1 // age 65 or older
)

// LikelihoodScore converts symptom and history evidence into a 1-5 likelihood
// of a cardiac event. Absent optional fields count as the lowest-severity
// value for that field; the result is clamped to [1,5].
func LikelihoodScore(in PatientInput) (int, Level) {
	pts := chestPainPoints(in)
	pts += breathPoints(in.ShortnessOfBreath)
	pts += symptomFlagPoints(in)
	pts += historyPoints(in)

	score := bandLikelihood(pts)
	return score, LevelForScore(score)
}

func chestPainPoints(in PatientInput) int {
	pts := 0
	switch in.ChestPainType {
	case ChestPainNonAnginal:
		pts += pointsChestPainNonAnginal
	case ChestPainAtypical:
		pts += pointsChestPainAtypical
	case ChestPainTypical:
		pts += pointsChestPainTypical
	default:
		// No chest pain reported: duration, radiation and trigger flags
		// are still honored if set, keeping the scorer monotonic even on
		// partially filled forms.
	}
	if d := in.ChestPainDurationMinutes; d != nil {
		switch {
		case *d >= 30:
			pts += pointsDurationSustained
		case *d >= 10:
			pts += pointsDurationProlonged
		}
	}
	if in.ChestPainRadiation {
		pts += pointsRadiation
	}
	if in.ChestPainExertional {
		pts += pointsExertional
	}
	return pts
}

func breathPoints(level BreathLevel) int {
	switch level {
	case BreathMild:
		return pointsBreathMild
	case BreathModerate:
		return pointsBreathModerate
	case BreathSevere:
		return pointsBreathSevere
	default:
		return 0
	}
}

func symptomFlagPoints(in PatientInput) int {
	pts := 0
	if in.Syncope {
		pts += pointsSyncope
	}
	if in.NeurologicalSymptoms {
		pts += pointsNeurological
	}
	for _, set := range []bool{
		in.Palpitations,
		in.Fainting,
		in.LegSwelling,
		in.Sweating,
		in.Dizziness,
		in.Nausea,
	} {
		if set {
			pts += pointsMinorSymptom
		}
	}
	return pts
}

func historyPoints(in PatientInput) int {
	pts := 0
	rf := in.RiskFactors
	if rf.PreviousHeartDisease {
		pts += pointsPriorHeartDisease
	}
	for _, set := range []bool{
		rf.Hypertension,
		rf.Diabetes,
		rf.ChronicKidneyDisease,
		rf.HighCholesterol,
		rf.Smoking,
		rf.Obesity,
		rf.FamilyHistory,
	} {
		if set {
			pts += pointsRiskFactor
		}
	}
	if in.Age != nil && *in.Age >= 65 {
		pts += pointsElderly
	}
	return pts
}

// bandLikelihood maps accumulated points to the 1-5 score. Zero evidence is
// always a 1; ten or more points saturate at 5.
func bandLikelihood(pts int) int {
	switch {
	case pts <= 0:
		return 1
	case pts <= 3:
		return 2
	case pts <= 6:
		return 3
	case pts <= 9:
		return 4
	default:
		return 5
	}
}
