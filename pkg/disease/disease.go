// Package disease matches reported field symptoms against each crop's known
// disease table and builds a treatment program for the best match.
package disease

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"krishi/entities"
	"krishi/pkg/knowledge"
)

type Engine interface {
	Diagnose(cropName string, symptoms []string) (*Diagnosis, *knowledge.NotFound)
}

type scored struct {
	key        string
	disease    entities.Disease
	confidence float64
}

type DiagnosisDetail struct {
	SymptomsMatch string `json:"symptoms_match"`
	SpreadRisk    string `json:"spread_risk"`
	YieldImpact   string `json:"yield_impact"`
}

type ChemicalTreatment struct {
	RecommendedProduct   string   `json:"recommended_product"`
	Dosage               string   `json:"dosage"`
	ApplicationFrequency string   `json:"application_frequency"`
	SafetyPrecautions    []string `json:"safety_precautions"`
}

type OrganicTreatment struct {
	Treatment     string `json:"treatment"`
	Dosage        string `json:"dosage"`
	Effectiveness string `json:"effectiveness"`
}

type AlternativeDiagnosis struct {
	DiseaseName     string  `json:"disease_name"`
	ConfidenceScore float64 `json:"confidence_score"`
}

type Diagnosis struct {
	DiseaseName           string                 `json:"disease_name"`
	ScientificName        string                 `json:"scientific_name,omitempty"`
	ConfidenceScore       float64                `json:"confidence_score"`
	Severity              string                 `json:"severity,omitempty"`
	AffectedParts         []string               `json:"affected_parts,omitempty"`
	Diagnosis             *DiagnosisDetail       `json:"diagnosis,omitempty"`
	ImmediateActions      []string               `json:"immediate_actions,omitempty"`
	ChemicalTreatment     *ChemicalTreatment     `json:"chemical_treatment,omitempty"`
	OrganicAlternatives   []OrganicTreatment     `json:"organic_alternatives,omitempty"`
	PreventiveMeasures    []string               `json:"preventive_measures,omitempty"`
	MonitoringPlan        []string               `json:"monitoring_plan,omitempty"`
	ExpectedRecoveryTime  string                 `json:"expected_recovery_time,omitempty"`
	AlternativeDiagnoses  []AlternativeDiagnosis `json:"alternative_diagnoses,omitempty"`
	AnalysisMethod        string                 `json:"analysis_method,omitempty"`
	Message               string                 `json:"message,omitempty"`
	Recommendation        string                 `json:"recommendation,omitempty"`
	CommonDiseasesForCrop []string               `json:"common_diseases_for_crop,omitempty"`
	AISummary             string                 `json:"ai_summary,omitempty"`
}

type engine struct {
	base *knowledge.Base
}

func New(base *knowledge.Base) Engine { return &engine{base: base} }

func (e *engine) Diagnose(cropName string, symptoms []string) (*Diagnosis, *knowledge.NotFound) {
	rec, nf := e.base.Lookup(cropName)
	if nf != nil {
		return nil, nf
	}
	if len(rec.CommonDiseases) == 0 {
		return &Diagnosis{
			DiseaseName:    "Unknown",
			Message:        fmt.Sprintf("No disease data available for %s", cropName),
			Recommendation: "Consult a local agriculture officer with photos of the affected plants",
		}, nil
	}

	candidates := score(rec.CommonDiseases, symptoms)
	if len(candidates) == 0 {
		names := make([]string, 0, len(rec.CommonDiseases))
		for key := range rec.CommonDiseases {
			names = append(names, displayName(key))
		}
		sort.Strings(names)
		return &Diagnosis{
			DiseaseName:           "No Match Found",
			ConfidenceScore:       0,
			Message:               "The reported symptoms do not match any known disease for this crop",
			Recommendation:        "Consult a local agriculture officer or upload clear photos for expert review",
			CommonDiseasesForCrop: names,
		}, nil
	}

	best := candidates[0]
	d := best.disease

	result := &Diagnosis{
		DiseaseName:     displayName(best.key),
		ScientificName:  best.key,
		ConfidenceScore: best.confidence,
		Severity:        severity(best.confidence),
		AffectedParts:   []string{"Leaves", "Stems"},
		Diagnosis: &DiagnosisDetail{
			SymptomsMatch: fmt.Sprintf("%.0f%% of known symptoms match", best.confidence),
			SpreadRisk:    spreadRisk(best.confidence),
			YieldImpact:   "10-30% yield loss if untreated",
		},
		ImmediateActions: []string{
			"Isolate or remove heavily affected plants",
			"Avoid overhead irrigation until treated",
			"Begin treatment within 48 hours",
		},
		ChemicalTreatment:   chemicalTreatment(d.TreatmentChemical),
		OrganicAlternatives: organicAlternatives(d.TreatmentOrganic),
		PreventiveMeasures:  d.Prevention,
		MonitoringPlan: []string{
			"Inspect the field every 2-3 days",
			"Track spread to neighboring plants",
			"Re-apply treatment if symptoms persist after 7 days",
		},
		ExpectedRecoveryTime: "2-3 weeks with proper treatment",
		AnalysisMethod:       "rule_based_symptom_matching",
	}
	for _, alt := range candidates[1:] {
		if len(result.AlternativeDiagnoses) >= 2 {
			break
		}
		result.AlternativeDiagnoses = append(result.AlternativeDiagnoses, AlternativeDiagnosis{
			DiseaseName:     displayName(alt.key),
			ConfidenceScore: alt.confidence,
		})
	}
	return result, nil
}

// score computes per-disease confidence as the rounded percentage of the
// disease's known symptoms found in the reported text by word overlap.
// Zero-confidence candidates are discarded; ties break on the disease key.
func score(diseases map[string]entities.Disease, symptoms []string) []scored {
	if len(symptoms) == 0 {
		return nil
	}
	reported := strings.ToLower(strings.Join(symptoms, " "))
	var out []scored
	for key, d := range diseases {
		if len(d.Symptoms) == 0 {
			continue
		}
		matches := 0
		for _, known := range d.Symptoms {
			if symptomMatches(known, reported) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		conf := math.Round(float64(matches) / float64(len(d.Symptoms)) * 100)
		out = append(out, scored{key: key, disease: d, confidence: conf})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].confidence != out[j].confidence {
			return out[i].confidence > out[j].confidence
		}
		return out[i].key < out[j].key
	})
	return out
}

// symptomMatches reports whether any word of the known symptom appears in the
// reported text.
func symptomMatches(known, reported string) bool {
	for _, word := range strings.Fields(strings.ToLower(known)) {
		if strings.Contains(reported, word) {
			return true
		}
	}
	return false
}

func severity(confidence float64) string {
	switch {
	case confidence > 70:
		return "High"
	case confidence > 40:
		return "Moderate"
	default:
		return "Low"
	}
}

func spreadRisk(confidence float64) string {
	if confidence > 70 {
		return "High"
	}
	return "Moderate"
}

// chemicalTreatment splits the "<product> @ <dosage>" treatment string.
func chemicalTreatment(treatment string) *ChemicalTreatment {
	product := treatment
	dosage := "As per label"
	if idx := strings.Index(treatment, "@"); idx >= 0 {
		product = strings.TrimSpace(treatment[:idx])
		dosage = strings.TrimSpace(treatment[idx+1:])
	}
	return &ChemicalTreatment{
		RecommendedProduct:   product,
		Dosage:               dosage,
		ApplicationFrequency: "Every 10-15 days, 2-3 applications",
		SafetyPrecautions: []string{
			"Wear gloves and a mask while spraying",
			"Do not spray against the wind",
			"Observe the pre-harvest interval on the label",
		},
	}
}

func organicAlternatives(treatment string) []OrganicTreatment {
	name := treatment
	dosage := "As recommended"
	if idx := strings.Index(treatment, "@"); idx >= 0 {
		name = strings.TrimSpace(treatment[:idx])
		dosage = strings.TrimSpace(treatment[idx+1:])
	}
	return []OrganicTreatment{{
		Treatment:     name,
		Dosage:        dosage,
		Effectiveness: "70-80%",
	}}
}

// displayName turns a snake_case disease key into a title.
func displayName(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
