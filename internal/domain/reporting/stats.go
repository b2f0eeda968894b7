package reporting

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/heartwise/heartwise/internal/domain/prediction"
)

// highRiskThreshold splits risk scores; the boundary itself counts as high.
const highRiskThreshold = 0.5

var correlationFeatures = []string{"age", "trestbps", "chol", "thalach", "oldpeak", "probability"}

var ageBuckets = []struct {
	label    string
	min, max int
}{
	{"20-30", 20, 30},
	{"31-40", 31, 40},
	{"41-50", 41, 50},
	{"51-60", 51, 60},
	{"61-70", 61, 70},
	{"71+", 71, 150},
}

// emptyStats is the explicit empty-state payload: all zeros and empty
// collections, still success-shaped.
func emptyStats() Stats {
	return Stats{
		ChestPainTypes:          []ChestPainCount{},
		ModelMetrics:            defaultModelMetrics,
		AgeDistribution:         []AgeBucket{},
		FeatureImportance:       []FeatureImportance{},
		CorrelationMatrix:       []CorrelationCell{},
		CholesterolDistribution: []float64{},
	}
}

// computeStats aggregates the scored patients and their latest tests into
// the dashboard payload. Risk levels and age histogram come from the
// patients; everything test-derived comes from the latest test per patient.
func computeStats(patients []ScoredPatient, latestTests []*prediction.Test) Stats {
	if len(patients) == 0 {
		return emptyStats()
	}

	total := len(patients)
	high := 0
	for _, p := range patients {
		if p.HeartRiskScore >= highRiskThreshold {
			high++
		}
	}
	low := total - high

	stats := Stats{
		TotalPredictions: total,
		RiskLevels: RiskLevels{
			High:        high,
			Low:         low,
			HighPercent: float64(high) / float64(total) * 100,
			LowPercent:  float64(low) / float64(total) * 100,
		},
		MostCommonChestPain: 0,
		ModelMetrics:        defaultModelMetrics,
		FeatureImportance:   defaultFeatureImportance,
	}

	// Averages: test-derived where tests exist, patient ages otherwise.
	if len(latestTests) > 0 {
		var sumAge, sumChol, sumBP float64
		for _, t := range latestTests {
			sumAge += float64(t.Age)
			sumChol += t.Chol
			sumBP += t.Trestbps
		}
		n := float64(len(latestTests))
		stats.Averages = Averages{Age: sumAge / n, Cholesterol: sumChol / n, BloodPressure: sumBP / n}
	} else {
		var sumAge float64
		for _, p := range patients {
			sumAge += float64(p.Age)
		}
		stats.Averages = Averages{Age: sumAge / float64(total)}
	}

	// Gender x outcome from the latest tests.
	for _, t := range latestTests {
		outcome := &stats.GenderBreakdown.Female
		if t.Sex == 1 {
			outcome = &stats.GenderBreakdown.Male
		}
		if t.Prediction == 1 {
			outcome.Diseased++
		} else {
			outcome.Healthy++
		}
	}

	// Chest pain histogram, keeping only populated buckets; the modal type
	// breaks ties toward the lower type number.
	var cpCounts [4]int
	for _, t := range latestTests {
		if t.CP >= 0 && t.CP < len(cpCounts) {
			cpCounts[t.CP]++
		}
	}
	stats.ChestPainTypes = []ChestPainCount{}
	maxCount := 0
	for cp, count := range cpCounts {
		if count > 0 {
			stats.ChestPainTypes = append(stats.ChestPainTypes, ChestPainCount{Type: cp, Count: count})
		}
		if count > maxCount {
			maxCount = count
			stats.MostCommonChestPain = cp
		}
	}

	// Fixed six-bucket age histogram over raw patient ages.
	stats.AgeDistribution = make([]AgeBucket, 0, len(ageBuckets))
	for _, b := range ageBuckets {
		count := 0
		for _, p := range patients {
			if p.Age >= b.min && p.Age <= b.max {
				count++
			}
		}
		stats.AgeDistribution = append(stats.AgeDistribution, AgeBucket{Range: b.label, Count: count})
	}

	stats.CorrelationMatrix = correlationMatrix(patients, latestTests)

	chols := make([]float64, 0, len(latestTests))
	for _, t := range latestTests {
		chols = append(chols, t.Chol)
	}
	sort.Float64s(chols)
	stats.CholesterolDistribution = chols

	return stats
}

// correlationMatrix computes the flattened 6x6 Pearson matrix over the
// latest-test vectors. The probability column is each test's owning
// patient's cached risk score, keeping all six vectors the same length.
func correlationMatrix(patients []ScoredPatient, latestTests []*prediction.Test) []CorrelationCell {
	if len(latestTests) == 0 {
		return []CorrelationCell{}
	}

	scoreByPatient := make(map[uuid.UUID]float64, len(patients))
	for _, p := range patients {
		scoreByPatient[p.ID] = p.HeartRiskScore
	}

	vectors := map[string][]float64{}
	for _, name := range correlationFeatures {
		vectors[name] = make([]float64, 0, len(latestTests))
	}
	for _, t := range latestTests {
		vectors["age"] = append(vectors["age"], float64(t.Age))
		vectors["trestbps"] = append(vectors["trestbps"], t.Trestbps)
		vectors["chol"] = append(vectors["chol"], t.Chol)
		vectors["thalach"] = append(vectors["thalach"], t.Thalach)
		vectors["oldpeak"] = append(vectors["oldpeak"], t.Oldpeak)
		vectors["probability"] = append(vectors["probability"], scoreByPatient[t.PatientID])
	}

	cells := make([]CorrelationCell, 0, len(correlationFeatures)*len(correlationFeatures))
	for _, x := range correlationFeatures {
		for _, y := range correlationFeatures {
			cells = append(cells, CorrelationCell{X: x, Y: y, Value: pearson(vectors[x], vectors[y])})
		}
	}
	return cells
}

// pearson computes r = (nΣxy − ΣxΣy) / sqrt((nΣx²−(Σx)²)(nΣy²−(Σy)²)),
// defined as 0 when the denominator is 0.
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
