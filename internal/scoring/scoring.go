package scoring

// The Burnout Assessment Tool (BAT) is a fixed 33-item questionnaire.
// Items are answered on a 5-point Likert scale and partitioned into
// contiguous sub-scales; every score is the plain mean of its items.
const (
	NumItems    = 33
	MinResponse = 1
	MaxResponse = 5
)

// RiskLevel is the categorical classification of a score.
type RiskLevel string

const (
	RiskGreen  RiskLevel = "green"
	RiskOrange RiskLevel = "orange"
	RiskRed    RiskLevel = "red"
)

// Dimension names one scored sub-scale of the instrument.
type Dimension string

const (
	DimTotal               Dimension = "total"
	DimExhaustion          Dimension = "exhaustion"
	DimMentalDistance      Dimension = "mental_distance"
	DimCognitiveImpairment Dimension = "cognitive_impairment"
	DimEmotionalImpairment Dimension = "emotional_impairment"
	DimSecondary           Dimension = "secondary"
)

// itemSlice is a half-open [start, end) range over the response vector.
type itemSlice struct {
	start, end int
}

var (
	exhaustionItems          = itemSlice{0, 8}
	mentalDistanceItems      = itemSlice{8, 13}
	cognitiveImpairmentItems = itemSlice{13, 18}
	emotionalImpairmentItems = itemSlice{18, 23}
	coreItems                = itemSlice{0, 23}
	psychologicalItems       = itemSlice{23, 28}
	psychosomaticItems       = itemSlice{28, 33}
	secondaryItems           = itemSlice{23, 33}
)

// cutoff holds the upper bounds of the green and orange bands for one
// dimension. Anything above orangeMax up to the scale maximum is red.
type cutoff struct {
	greenMax  float64
	orangeMax float64
}

// Statistical cutoffs for the BAT, fixed per instrument version.
var cutoffs = map[Dimension]cutoff{
	DimTotal:               {greenMax: 2.58, orangeMax: 3.01},
	DimExhaustion:          {greenMax: 3.05, orangeMax: 3.30},
	DimMentalDistance:      {greenMax: 2.49, orangeMax: 3.09},
	DimCognitiveImpairment: {greenMax: 2.69, orangeMax: 3.09},
	DimEmotionalImpairment: {greenMax: 2.09, orangeMax: 2.89},
	DimSecondary:           {greenMax: 2.84, orangeMax: 3.34},
}

// Result holds every score and risk classification computed from one
// response vector. Scores are raw means; rounding is left to callers.
type Result struct {
	ExhaustionScore              float64 `json:"exhaustionScore"`
	MentalDistanceScore          float64 `json:"mentalDistanceScore"`
	CognitiveImpairmentScore     float64 `json:"cognitiveImpairmentScore"`
	EmotionalImpairmentScore     float64 `json:"emotionalImpairmentScore"`
	TotalBATScore                float64 `json:"totalBATScore"`
	PsychologicalComplaintsScore float64 `json:"psychologicalComplaintsScore"`
	PsychosomaticComplaintsScore float64 `json:"psychosomaticComplaintsScore"`
	CombinedSecondaryScore       float64 `json:"combinedSecondaryScore"`

	RiskLevel               RiskLevel `json:"riskLevel"`
	ExhaustionRisk          RiskLevel `json:"exhaustionRisk"`
	MentalDistanceRisk      RiskLevel `json:"mentalDistanceRisk"`
	CognitiveImpairmentRisk RiskLevel `json:"cognitiveImpairmentRisk"`
	EmotionalImpairmentRisk RiskLevel `json:"emotionalImpairmentRisk"`
	SecondaryRisk           RiskLevel `json:"secondaryRisk"`
}

// Score computes all sub-scale means and risk classifications for a
// response vector. The input must already be validated with
// ValidateResponses: exactly NumItems values, each within
// [MinResponse, MaxResponse]. Score itself performs no checks.
func Score(responses []int64) Result {
	result := Result{
		ExhaustionScore:              sliceMean(responses, exhaustionItems),
		MentalDistanceScore:          sliceMean(responses, mentalDistanceItems),
		CognitiveImpairmentScore:     sliceMean(responses, cognitiveImpairmentItems),
		EmotionalImpairmentScore:     sliceMean(responses, emotionalImpairmentItems),
		TotalBATScore:                sliceMean(responses, coreItems),
		PsychologicalComplaintsScore: sliceMean(responses, psychologicalItems),
		PsychosomaticComplaintsScore: sliceMean(responses, psychosomaticItems),
		CombinedSecondaryScore:       sliceMean(responses, secondaryItems),
	}

	result.RiskLevel = Classify(DimTotal, result.TotalBATScore)
	result.ExhaustionRisk = Classify(DimExhaustion, result.ExhaustionScore)
	result.MentalDistanceRisk = Classify(DimMentalDistance, result.MentalDistanceScore)
	result.CognitiveImpairmentRisk = Classify(DimCognitiveImpairment, result.CognitiveImpairmentScore)
	result.EmotionalImpairmentRisk = Classify(DimEmotionalImpairment, result.EmotionalImpairmentScore)
	result.SecondaryRisk = Classify(DimSecondary, result.CombinedSecondaryScore)

	return result
}

// Classify maps a score onto the risk band of the given dimension.
// Bands are closed on both ends; a score on a listed boundary belongs
// to the band listing it.
func Classify(dim Dimension, score float64) RiskLevel {
	c, ok := cutoffs[dim]
	if !ok {
		return RiskGreen
	}
	// Scores from a valid vector always land in [1, 5]; anything
	// outside falls through to green as a defensive branch only.
	if score < MinResponse || score > MaxResponse {
		return RiskGreen
	}
	switch {
	case score <= c.greenMax:
		return RiskGreen
	case score <= c.orangeMax:
		return RiskOrange
	default:
		return RiskRed
	}
}

func sliceMean(responses []int64, s itemSlice) float64 {
	var sum int64
	for _, v := range responses[s.start:s.end] {
		sum += v
	}
	return float64(sum) / float64(s.end-s.start)
}
