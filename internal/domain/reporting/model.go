// Package reporting aggregates patients and their latest test results into
// the dashboard statistics payload.
package reporting

// Stats is the dashboard payload. Field names and nesting are part of the
// SPA contract and must stay stable.
type Stats struct {
	TotalPredictions        int                 `json:"totalPredictions"`
	RiskLevels              RiskLevels          `json:"riskLevels"`
	Averages                Averages            `json:"averages"`
	GenderBreakdown         GenderBreakdown     `json:"genderBreakdown"`
	ChestPainTypes          []ChestPainCount    `json:"chestPainTypes"`
	MostCommonChestPain     int                 `json:"mostCommonChestPain"`
	ModelMetrics            ModelMetrics        `json:"modelMetrics"`
	AgeDistribution         []AgeBucket         `json:"ageDistribution"`
	FeatureImportance       []FeatureImportance `json:"featureImportance"`
	CorrelationMatrix       []CorrelationCell   `json:"correlationMatrix"`
	CholesterolDistribution []float64           `json:"cholesterolDistribution"`
}

// RiskLevels splits patients at the inclusive 0.5 threshold.
type RiskLevels struct {
	High        int     `json:"high"`
	Low         int     `json:"low"`
	HighPercent float64 `json:"highPercent"`
	LowPercent  float64 `json:"lowPercent"`
}

type Averages struct {
	Age           float64 `json:"age"`
	Cholesterol   float64 `json:"cholesterol"`
	BloodPressure float64 `json:"bloodPressure"`
}

type GenderOutcome struct {
	Diseased int `json:"diseased"`
	Healthy  int `json:"healthy"`
}

type GenderBreakdown struct {
	Male   GenderOutcome `json:"male"`
	Female GenderOutcome `json:"female"`
}

type ChestPainCount struct {
	Type  int `json:"type"`
	Count int `json:"count"`
}

type AgeBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// CorrelationCell is one entry of the flattened 6x6 Pearson matrix.
type CorrelationCell struct {
	X     string  `json:"x"`
	Y     string  `json:"y"`
	Value float64 `json:"value"`
}

type ModelMetrics struct {
	Accuracy float64 `json:"accuracy"`
	Recall   float64 `json:"recall"`
	AUC      float64 `json:"auc"`
}

// defaultModelMetrics is a static placeholder, not computed from outcomes.
var defaultModelMetrics = ModelMetrics{Accuracy: 0.87, Recall: 0.85, AUC: 0.92}

// defaultFeatureImportance is a fixed illustrative table, not derived from
// the data.
var defaultFeatureImportance = []FeatureImportance{
	{Feature: "Chest Pain Type", Importance: 0.28},
	{Feature: "Thalassemia", Importance: 0.22},
	{Feature: "Vessels Colored", Importance: 0.18},
	{Feature: "Max Heart Rate", Importance: 0.12},
	{Feature: "ST Depression", Importance: 0.10},
	{Feature: "Age", Importance: 0.10},
}
