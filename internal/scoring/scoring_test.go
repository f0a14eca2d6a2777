package scoring

import (
	"math"
	"testing"
)

func uniformVector(v int64) []int64 {
	responses := make([]int64, NumItems)
	for i := range responses {
		responses[i] = v
	}
	return responses
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreAllOnes(t *testing.T) {
	result := Score(uniformVector(1))

	scores := []float64{
		result.ExhaustionScore,
		result.MentalDistanceScore,
		result.CognitiveImpairmentScore,
		result.EmotionalImpairmentScore,
		result.TotalBATScore,
		result.PsychologicalComplaintsScore,
		result.PsychosomaticComplaintsScore,
		result.CombinedSecondaryScore,
	}
	for i, s := range scores {
		if !almostEqual(s, 1.0) {
			t.Fatalf("score %d = %v, want 1.0", i, s)
		}
	}

	risks := []RiskLevel{
		result.RiskLevel,
		result.ExhaustionRisk,
		result.MentalDistanceRisk,
		result.CognitiveImpairmentRisk,
		result.EmotionalImpairmentRisk,
		result.SecondaryRisk,
	}
	for i, r := range risks {
		if r != RiskGreen {
			t.Fatalf("risk %d = %q, want green", i, r)
		}
	}
}

func TestScoreAllFives(t *testing.T) {
	result := Score(uniformVector(5))

	scores := []float64{
		result.ExhaustionScore,
		result.MentalDistanceScore,
		result.CognitiveImpairmentScore,
		result.EmotionalImpairmentScore,
		result.TotalBATScore,
		result.PsychologicalComplaintsScore,
		result.PsychosomaticComplaintsScore,
		result.CombinedSecondaryScore,
	}
	for i, s := range scores {
		if !almostEqual(s, 5.0) {
			t.Fatalf("score %d = %v, want 5.0", i, s)
		}
	}

	risks := []RiskLevel{
		result.RiskLevel,
		result.ExhaustionRisk,
		result.MentalDistanceRisk,
		result.CognitiveImpairmentRisk,
		result.EmotionalImpairmentRisk,
		result.SecondaryRisk,
	}
	for i, r := range risks {
		if r != RiskRed {
			t.Fatalf("risk %d = %q, want red", i, r)
		}
	}
}

func TestScoreSliceMeans(t *testing.T) {
	// Distinct value per sub-scale so a misplaced slice boundary shows up.
	responses := make([]int64, NumItems)
	fill := func(start, end int, v int64) {
		for i := start; i < end; i++ {
			responses[i] = v
		}
	}
	fill(0, 8, 2)   // exhaustion
	fill(8, 13, 3)  // mental distance
	fill(13, 18, 4) // cognitive impairment
	fill(18, 23, 5) // emotional impairment
	fill(23, 28, 1) // psychological complaints
	fill(28, 33, 3) // psychosomatic complaints

	result := Score(responses)

	if !almostEqual(result.ExhaustionScore, 2.0) {
		t.Fatalf("exhaustion = %v, want 2.0", result.ExhaustionScore)
	}
	if !almostEqual(result.MentalDistanceScore, 3.0) {
		t.Fatalf("mental distance = %v, want 3.0", result.MentalDistanceScore)
	}
	if !almostEqual(result.CognitiveImpairmentScore, 4.0) {
		t.Fatalf("cognitive impairment = %v, want 4.0", result.CognitiveImpairmentScore)
	}
	if !almostEqual(result.EmotionalImpairmentScore, 5.0) {
		t.Fatalf("emotional impairment = %v, want 5.0", result.EmotionalImpairmentScore)
	}
	// 8*2 + 5*3 + 5*4 + 5*5 = 76 over the 23 core items
	if !almostEqual(result.TotalBATScore, 76.0/23.0) {
		t.Fatalf("total = %v, want %v", result.TotalBATScore, 76.0/23.0)
	}
	if !almostEqual(result.PsychologicalComplaintsScore, 1.0) {
		t.Fatalf("psychological = %v, want 1.0", result.PsychologicalComplaintsScore)
	}
	if !almostEqual(result.PsychosomaticComplaintsScore, 3.0) {
		t.Fatalf("psychosomatic = %v, want 3.0", result.PsychosomaticComplaintsScore)
	}
	// Mean over all 10 secondary items, not the mean of the two sub-scores.
	if !almostEqual(result.CombinedSecondaryScore, 20.0/10.0) {
		t.Fatalf("secondary = %v, want 2.0", result.CombinedSecondaryScore)
	}
}

func TestTotalIgnoresSecondaryItems(t *testing.T) {
	base := uniformVector(3)
	result := Score(base)

	changed := uniformVector(3)
	for i := 23; i < NumItems; i++ {
		changed[i] = 5
	}
	resultChanged := Score(changed)

	if !almostEqual(result.TotalBATScore, resultChanged.TotalBATScore) {
		t.Fatalf("total changed from %v to %v after editing secondary items",
			result.TotalBATScore, resultChanged.TotalBATScore)
	}
	if almostEqual(result.CombinedSecondaryScore, resultChanged.CombinedSecondaryScore) {
		t.Fatalf("secondary score did not react to secondary items")
	}
}

func TestScoreRangeInvariant(t *testing.T) {
	// A handful of deterministic but irregular vectors.
	vectors := [][]int64{
		uniformVector(1),
		uniformVector(3),
		uniformVector(5),
	}
	mixed := make([]int64, NumItems)
	for i := range mixed {
		mixed[i] = int64(i%5) + 1
	}
	vectors = append(vectors, mixed)

	for vi, v := range vectors {
		result := Score(v)
		scores := []float64{
			result.ExhaustionScore,
			result.MentalDistanceScore,
			result.CognitiveImpairmentScore,
			result.EmotionalImpairmentScore,
			result.TotalBATScore,
			result.PsychologicalComplaintsScore,
			result.PsychosomaticComplaintsScore,
			result.CombinedSecondaryScore,
		}
		for si, s := range scores {
			if s < 1.0 || s > 5.0 {
				t.Fatalf("vector %d score %d = %v, outside [1,5]", vi, si, s)
			}
		}
	}
}

func TestDimensionRisksAreIndependent(t *testing.T) {
	// High exhaustion with everything else minimal: the overall level
	// stays green while the exhaustion sub-scale goes red.
	responses := uniformVector(1)
	high := []int64{4, 4, 4, 3, 3, 3, 3, 3} // mean 3.375
	copy(responses[0:8], high)

	result := Score(responses)

	if result.ExhaustionRisk != RiskRed {
		t.Fatalf("exhaustion risk = %q, want red (score %v)", result.ExhaustionRisk, result.ExhaustionScore)
	}
	if result.RiskLevel != RiskGreen {
		t.Fatalf("overall risk = %q, want green (score %v)", result.RiskLevel, result.TotalBATScore)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		dim   Dimension
		score float64
		want  RiskLevel
	}{
		{DimTotal, 2.58, RiskGreen},
		{DimTotal, 2.59, RiskOrange},
		{DimTotal, 3.01, RiskOrange},
		{DimTotal, 3.02, RiskRed},
		{DimExhaustion, 3.05, RiskGreen},
		{DimExhaustion, 3.06, RiskOrange},
		{DimExhaustion, 3.30, RiskOrange},
		{DimExhaustion, 3.31, RiskRed},
		{DimMentalDistance, 2.49, RiskGreen},
		{DimMentalDistance, 2.50, RiskOrange},
		{DimMentalDistance, 3.09, RiskOrange},
		{DimMentalDistance, 3.10, RiskRed},
		{DimCognitiveImpairment, 2.69, RiskGreen},
		{DimCognitiveImpairment, 2.70, RiskOrange},
		{DimCognitiveImpairment, 3.09, RiskOrange},
		{DimCognitiveImpairment, 3.10, RiskRed},
		{DimEmotionalImpairment, 2.09, RiskGreen},
		{DimEmotionalImpairment, 2.10, RiskOrange},
		{DimEmotionalImpairment, 2.89, RiskOrange},
		{DimEmotionalImpairment, 2.90, RiskRed},
		{DimSecondary, 2.84, RiskGreen},
		{DimSecondary, 2.85, RiskOrange},
		{DimSecondary, 3.34, RiskOrange},
		{DimSecondary, 3.35, RiskRed},
		{DimTotal, 1.00, RiskGreen},
		{DimTotal, 5.00, RiskRed},
	}
	for _, c := range cases {
		if got := Classify(c.dim, c.score); got != c.want {
			t.Fatalf("Classify(%s, %v) = %q, want %q", c.dim, c.score, got, c.want)
		}
	}
}

func TestClassifyOutOfRangeDefaultsGreen(t *testing.T) {
	cases := []struct {
		dim   Dimension
		score float64
	}{
		{DimTotal, 0.5},
		{DimTotal, 5.5},
		{DimExhaustion, -1},
		{Dimension("unknown"), 3.5},
	}
	for _, c := range cases {
		if got := Classify(c.dim, c.score); got != RiskGreen {
			t.Fatalf("Classify(%s, %v) = %q, want green", c.dim, c.score, got)
		}
	}
}
