package knowledge

import "krishi/entities"

// staticCropOrder fixes the canonical listing order of the static base.
var staticCropOrder = []string{
	"sugarcane", "cotton", "rice", "jowar", "wheat",
	"tur", "soybean", "groundnut", "sunflower", "gram",
}

// Top Maharashtra crops. Quantities are kg/acre, water in mm, prices in ₹.
var staticCrops = map[string]*entities.CropRecord{
	"sugarcane": {
		MarathiName:    "ऊस",
		ScientificName: "Saccharum officinarum",
		Varieties:      []string{"Co-86032", "Co-0238", "Co-94012", "Co-98014"},
		DurationMonths: 12,
		Seasons:        []string{"Year-round (plant Feb-March or Oct-Nov)"},
		SoilRequirements: entities.SoilRequirement{
			OptimalPH: entities.Range{Min: 6.5, Max: 7.5},
			SoilTypes: []string{"Black", "Loamy", "Red"},
			NPK: entities.NPKRequirement{
				Nitrogen:   entities.Range{Min: 200, Max: 300},
				Phosphorus: entities.Range{Min: 80, Max: 100},
				Potassium:  entities.Range{Min: 80, Max: 120},
			},
		},
		FertilizationSchedule: []entities.FertilizationStage{
			{Stage: "Planting", TimingDays: 0, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO DAP", NPK: "18-46-0", QuantityPerAcre: 65, Unit: "kg"},
				{Name: "Potash", NPK: "0-0-60", QuantityPerAcre: 35, Unit: "kg"},
			}},
			{Stage: "45 Days After Planting", TimingDays: 45, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 85, Unit: "kg"},
			}},
			{Stage: "90 Days After Planting", TimingDays: 90, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 85, Unit: "kg"},
			}},
		},
		IrrigationSchedule: map[string]entities.IrrigationStage{
			"germination":  {FrequencyDays: 3, WaterMM: 50},
			"tillering":    {FrequencyDays: 7, WaterMM: 75},
			"grand_growth": {FrequencyDays: 7, WaterMM: 100},
			"maturity":     {FrequencyDays: 10, WaterMM: 50},
		},
		CommonDiseases: map[string]entities.Disease{
			"red_rot": {
				Symptoms:          []string{"red patches on leaves", "drying of leaves", "rotting of stem"},
				TreatmentChemical: "Carbendazim 50% WP @ 2g/liter",
				TreatmentOrganic:  "Neem oil spray @ 5ml/liter",
				Prevention:        []string{"Use resistant varieties", "Crop rotation", "Remove infected plants"},
			},
			"smut": {
				Symptoms:          []string{"whip-like structure", "black spores", "stunted growth"},
				TreatmentChemical: "Propiconazole @ 1ml/liter",
				TreatmentOrganic:  "Remove infected shoots immediately",
				Prevention:        []string{"Hot water treatment of setts", "Resistant varieties"},
			},
		},
		HarvestIndicators: entities.HarvestIndicators{
			MaturityDays:  360,
			BrixLevel:     18,
			PhysicalSigns: []string{"Yellowing of lower leaves", "Hardening of cane", "Sweet taste"},
		},
		MarketCalendar: entities.MarketCalendar{
			PeakDemandMonths: []int{11, 12, 1, 2},
			AvgPricePerTon:   3000,
			PriceVariation:   &entities.PriceVariation{Peak: 3200, OffSeason: 2800},
		},
		ExpectedYield: entities.Yield{Min: 40, Max: 50, Unit: "tons/acre"},
	},

	"cotton": {
		MarathiName:    "कापूस",
		ScientificName: "Gossypium hirsutum",
		Varieties:      []string{"Bt Cotton", "RCH-2", "Ankur-3028", "Tulasi-9"},
		DurationMonths: 6,
		Seasons:        []string{"Kharif (June-October)"},
		SoilRequirements: entities.SoilRequirement{
			OptimalPH: entities.Range{Min: 6.0, Max: 8.0},
			SoilTypes: []string{"Black", "Red", "Alluvial"},
			NPK: entities.NPKRequirement{
				Nitrogen:   entities.Range{Min: 100, Max: 150},
				Phosphorus: entities.Range{Min: 50, Max: 70},
				Potassium:  entities.Range{Min: 40, Max: 60},
			},
		},
		FertilizationSchedule: []entities.FertilizationStage{
			{Stage: "Basal Application", TimingDays: 0, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO DAP", NPK: "18-46-0", QuantityPerAcre: 40, Unit: "kg"},
				{Name: "Potash", NPK: "0-0-60", QuantityPerAcre: 20, Unit: "kg"},
			}},
			{Stage: "30-35 Days (Square Formation)", TimingDays: 32, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 45, Unit: "kg"},
			}},
			{Stage: "60 Days (Flowering)", TimingDays: 60, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 35, Unit: "kg"},
			}},
		},
		IrrigationSchedule: map[string]entities.IrrigationStage{
			"sowing":           {FrequencyDays: 5, WaterMM: 40},
			"vegetative":       {FrequencyDays: 10, WaterMM: 50},
			"flowering":        {FrequencyDays: 7, WaterMM: 60},
			"boll_development": {FrequencyDays: 10, WaterMM: 50},
		},
		CommonDiseases: map[string]entities.Disease{
			"bacterial_blight": {
				Symptoms:          []string{"water-soaked lesions", "angular leaf spots", "yellowing"},
				TreatmentChemical: "Streptocycline @ 0.5g/liter + Copper oxychloride @ 2g/liter",
				TreatmentOrganic:  "Bordeaux mixture @ 10g/liter",
				Prevention:        []string{"Use certified seeds", "Avoid overhead irrigation"},
			},
			"pink_bollworm": {
				Symptoms:          []string{"pink caterpillars in bolls", "rosette flowers", "boll damage"},
				TreatmentChemical: "Cypermethrin @ 1ml/liter",
				TreatmentOrganic:  "Pheromone traps, Neem seed kernel extract @ 50g/liter",
				Prevention:        []string{"Early sowing", "Destroy crop residue", "Trap crops"},
			},
		},
		HarvestIndicators: entities.HarvestIndicators{
			MaturityDays:  180,
			PhysicalSigns: []string{"Bolls burst open", "Fluffy white cotton", "Brown boll shells"},
		},
		MarketCalendar: entities.MarketCalendar{
			PeakDemandMonths:   []int{10, 11, 12},
			AvgPricePerQuintal: 6000,
			PriceVariation:     &entities.PriceVariation{Peak: 6500, OffSeason: 5500},
		},
		ExpectedYield: entities.Yield{Min: 12, Max: 18, Unit: "quintals/acre"},
	},

	"rice": {
		MarathiName:    "तांदूळ",
		ScientificName: "Oryza sativa",
		Varieties:      []string{"Swarna", "IR-64", "MTU-1010", "Indrayani"},
		DurationMonths: 4,
		Seasons:        []string{"Kharif (June-November)"},
		SoilRequirements: entities.SoilRequirement{
			OptimalPH: entities.Range{Min: 5.5, Max: 6.5},
			SoilTypes: []string{"Clayey", "Loamy"},
			NPK: entities.NPKRequirement{
				Nitrogen:   entities.Range{Min: 120, Max: 150},
				Phosphorus: entities.Range{Min: 60, Max: 80},
				Potassium:  entities.Range{Min: 40, Max: 60},
			},
		},
		FertilizationSchedule: []entities.FertilizationStage{
			{Stage: "Transplanting", TimingDays: 0, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO DAP", NPK: "18-46-0", QuantityPerAcre: 45, Unit: "kg"},
				{Name: "Potash", NPK: "0-0-60", QuantityPerAcre: 25, Unit: "kg"},
			}},
			{Stage: "Tillering (25 Days)", TimingDays: 25, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 50, Unit: "kg"},
			}},
			{Stage: "Panicle Initiation (50 Days)", TimingDays: 50, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 35, Unit: "kg"},
			}},
		},
		IrrigationSchedule: map[string]entities.IrrigationStage{
			"nursery":      {FrequencyDays: 2, WaterMM: 30},
			"vegetative":   {FrequencyDays: 3, WaterMM: 50},
			"reproductive": {FrequencyDays: 3, WaterMM: 60},
			"maturity":     {FrequencyDays: 5, WaterMM: 40},
		},
		CommonDiseases: map[string]entities.Disease{
			"blast": {
				Symptoms:          []string{"diamond-shaped lesions", "leaf spots", "neck blast"},
				TreatmentChemical: "Tricyclazole @ 0.6g/liter or Carbendazim @ 1g/liter",
				TreatmentOrganic:  "Pseudomonas fluorescens @ 10g/liter",
				Prevention:        []string{"Resistant varieties", "Balanced fertilization", "Avoid excess nitrogen"},
			},
			"bacterial_leaf_blight": {
				Symptoms:          []string{"water-soaked lesions", "yellow to white leaves", "wilting"},
				TreatmentChemical: "Copper hydroxide @ 2g/liter",
				TreatmentOrganic:  "Neem oil @ 5ml/liter",
				Prevention:        []string{"Use certified seeds", "Proper water management"},
			},
		},
		HarvestIndicators: entities.HarvestIndicators{
			MaturityDays:  120,
			PhysicalSigns: []string{"80% grains turned golden", "Moisture content 20-25%", "Drooping panicles"},
		},
		MarketCalendar: entities.MarketCalendar{
			PeakDemandMonths:   []int{10, 11, 12, 1},
			AvgPricePerQuintal: 2000,
			PriceVariation:     &entities.PriceVariation{Peak: 2200, OffSeason: 1800},
		},
		ExpectedYield: entities.Yield{Min: 20, Max: 30, Unit: "quintals/acre"},
	},

	"jowar": {
		MarathiName:    "ज्वारी",
		ScientificName: "Sorghum bicolor",
		Varieties:      []string{"CSH-16", "Parbhani Moti", "M-35-1", "Phule Yasoda"},
		DurationMonths: 4,
		Seasons:        []string{"Kharif (June-October)", "Rabi (October-March)"},
		SoilRequirements: entities.SoilRequirement{
			OptimalPH: entities.Range{Min: 6.0, Max: 8.5},
			SoilTypes: []string{"Black", "Red", "Loamy"},
			NPK: entities.NPKRequirement{
				Nitrogen:   entities.Range{Min: 80, Max: 100},
				Phosphorus: entities.Range{Min: 40, Max: 50},
				Potassium:  entities.Range{Min: 30, Max: 40},
			},
		},
		FertilizationSchedule: []entities.FertilizationStage{
			{Stage: "Sowing", TimingDays: 0, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO DAP", NPK: "18-46-0", QuantityPerAcre: 30, Unit: "kg"},
				{Name: "Potash", NPK: "0-0-60", QuantityPerAcre: 15, Unit: "kg"},
			}},
			{Stage: "30 Days After Sowing", TimingDays: 30, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 40, Unit: "kg"},
			}},
		},
		IrrigationSchedule: map[string]entities.IrrigationStage{
			"sowing":        {FrequencyDays: 10, WaterMM: 40},
			"vegetative":    {FrequencyDays: 12, WaterMM: 50},
			"flowering":     {FrequencyDays: 10, WaterMM: 60},
			"grain_filling": {FrequencyDays: 12, WaterMM: 45},
		},
		CommonDiseases: map[string]entities.Disease{
			"grain_mold": {
				Symptoms:          []string{"discolored grains", "moldy appearance", "reduced quality"},
				TreatmentChemical: "Mancozeb @ 2g/liter",
				TreatmentOrganic:  "Dry the grains properly, sun drying",
				Prevention:        []string{"Harvest at right moisture", "Proper storage"},
			},
			"downy_mildew": {
				Symptoms:          []string{"white downy growth", "leaf stripes", "stunting"},
				TreatmentChemical: "Metalaxyl @ 2g/kg seed treatment",
				TreatmentOrganic:  "Remove infected plants",
				Prevention:        []string{"Resistant varieties", "Seed treatment"},
			},
		},
		HarvestIndicators: entities.HarvestIndicators{
			MaturityDays:  110,
			PhysicalSigns: []string{"Grains hard and dry", "Leaves turn yellow", "Moisture below 20%"},
		},
		MarketCalendar: entities.MarketCalendar{
			PeakDemandMonths:   []int{10, 11, 1, 2},
			AvgPricePerQuintal: 2800,
			PriceVariation:     &entities.PriceVariation{Peak: 3000, OffSeason: 2600},
		},
		ExpectedYield: entities.Yield{Min: 10, Max: 15, Unit: "quintals/acre"},
	},

	"wheat": {
		MarathiName:    "गहू",
		ScientificName: "Triticum aestivum",
		Varieties:      []string{"HD-2967", "Lok-1", "NIAW-301", "Phule Samrudhi"},
		DurationMonths: 4,
		Seasons:        []string{"Rabi (November-March)"},
		SoilRequirements: entities.SoilRequirement{
			OptimalPH: entities.Range{Min: 6.0, Max: 7.5},
			SoilTypes: []string{"Loamy", "Clayey", "Black"},
			NPK: entities.NPKRequirement{
				Nitrogen:   entities.Range{Min: 100, Max: 120},
				Phosphorus: entities.Range{Min: 50, Max: 60},
				Potassium:  entities.Range{Min: 40, Max: 50},
			},
		},
		FertilizationSchedule: []entities.FertilizationStage{
			{Stage: "Sowing", TimingDays: 0, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO DAP", NPK: "18-46-0", QuantityPerAcre: 35, Unit: "kg"},
				{Name: "Potash", NPK: "0-0-60", QuantityPerAcre: 20, Unit: "kg"},
			}},
			{Stage: "First Irrigation (21 Days)", TimingDays: 21, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 50, Unit: "kg"},
			}},
			{Stage: "Second Irrigation (40 Days)", TimingDays: 40, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 30, Unit: "kg"},
			}},
		},
		IrrigationSchedule: map[string]entities.IrrigationStage{
			"crown_root_initiation": {FrequencyDays: 21, WaterMM: 50},
			"tillering":             {FrequencyDays: 15, WaterMM: 50},
			"jointing":              {FrequencyDays: 15, WaterMM: 60},
			"flowering":             {FrequencyDays: 12, WaterMM: 60},
			"milk_stage":            {FrequencyDays: 12, WaterMM: 50},
			"dough_stage":           {FrequencyDays: 15, WaterMM: 40},
		},
		CommonDiseases: map[string]entities.Disease{
			"rust": {
				Symptoms:          []string{"orange-brown pustules", "leaf yellowing", "reduced vigor"},
				TreatmentChemical: "Propiconazole @ 1ml/liter",
				TreatmentOrganic:  "Sulfur dust @ 25kg/acre",
				Prevention:        []string{"Resistant varieties", "Timely sowing", "Proper spacing"},
			},
			"loose_smut": {
				Symptoms:          []string{"black powdery mass in ears", "destroyed grains"},
				TreatmentChemical: "Carboxin @ 2g/kg seed treatment",
				TreatmentOrganic:  "Hot water seed treatment at 52°C for 10 min",
				Prevention:        []string{"Certified seeds", "Seed treatment"},
			},
		},
		HarvestIndicators: entities.HarvestIndicators{
			MaturityDays:  120,
			PhysicalSigns: []string{"Golden yellow color", "Grains hard", "Moisture 20-22%"},
		},
		MarketCalendar: entities.MarketCalendar{
			PeakDemandMonths:   []int{3, 4, 5},
			AvgPricePerQuintal: 2125, // MSP
			PriceVariation:     &entities.PriceVariation{Peak: 2200, OffSeason: 2000},
		},
		ExpectedYield: entities.Yield{Min: 15, Max: 20, Unit: "quintals/acre"},
	},

	"tur": {
		MarathiName:    "तूर",
		ScientificName: "Cajanus cajan",
		Varieties:      []string{"BDN-716", "Vipula", "Phule T-9", "ICPL-87119"},
		DurationMonths: 6,
		Seasons:        []string{"Kharif (June-December)"},
		SoilRequirements: entities.SoilRequirement{
			OptimalPH: entities.Range{Min: 6.5, Max: 7.5},
			SoilTypes: []string{"Black", "Red", "Loamy"},
			NPK: entities.NPKRequirement{
				// Legume: fixes most of its own nitrogen.
				Nitrogen:   entities.Range{Min: 20, Max: 25},
				Phosphorus: entities.Range{Min: 50, Max: 60},
				Potassium:  entities.Range{Min: 25, Max: 30},
			},
		},
		FertilizationSchedule: []entities.FertilizationStage{
			{Stage: "Sowing", TimingDays: 0, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO DAP", NPK: "18-46-0", QuantityPerAcre: 30, Unit: "kg"},
				{Name: "Potash", NPK: "0-0-60", QuantityPerAcre: 12, Unit: "kg"},
			}},
			{Stage: "Flowering (60 Days)", TimingDays: 60, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 10, Unit: "kg"},
			}},
		},
		IrrigationSchedule: map[string]entities.IrrigationStage{
			"germination": {FrequencyDays: 15, WaterMM: 40},
			"vegetative":  {FrequencyDays: 20, WaterMM: 50},
			"flowering":   {FrequencyDays: 15, WaterMM: 50},
			"pod_filling": {FrequencyDays: 12, WaterMM: 50},
		},
		CommonDiseases: map[string]entities.Disease{
			"wilt": {
				Symptoms:          []string{"yellowing of leaves", "drooping", "wilting of entire plant"},
				TreatmentChemical: "Carbendazim @ 2g/liter soil drench",
				TreatmentOrganic:  "Trichoderma @ 5g/liter soil application",
				Prevention:        []string{"Resistant varieties", "Crop rotation", "Seed treatment"},
			},
			"pod_borer": {
				Symptoms:          []string{"holes in pods", "caterpillars inside", "damaged grains"},
				TreatmentChemical: "Quinalphos @ 2ml/liter",
				TreatmentOrganic:  "Bacillus thuringiensis @ 2g/liter",
				Prevention:        []string{"Pheromone traps", "Bird perches", "Neem spray"},
			},
		},
		HarvestIndicators: entities.HarvestIndicators{
			MaturityDays:  180,
			PhysicalSigns: []string{"Pods turn brown", "Leaves fall", "Dry rattling sound from pods"},
		},
		MarketCalendar: entities.MarketCalendar{
			PeakDemandMonths:   []int{12, 1, 2},
			AvgPricePerQuintal: 7000, // MSP
			PriceVariation:     &entities.PriceVariation{Peak: 7500, OffSeason: 6500},
		},
		ExpectedYield: entities.Yield{Min: 6, Max: 10, Unit: "quintals/acre"},
	},

	"soybean": {
		MarathiName:    "सोयाबीन",
		ScientificName: "Glycine max",
		Varieties:      []string{"JS-335", "MAUS-71", "Phule Kalyani", "JS-95-60"},
		DurationMonths: 3.5,
		Seasons:        []string{"Kharif (June-October)"},
		SoilRequirements: entities.SoilRequirement{
			OptimalPH: entities.Range{Min: 6.5, Max: 7.0},
			SoilTypes: []string{"Black", "Red", "Alluvial"},
			NPK: entities.NPKRequirement{
				Nitrogen:   entities.Range{Min: 20, Max: 30},
				Phosphorus: entities.Range{Min: 60, Max: 80},
				Potassium:  entities.Range{Min: 30, Max: 40},
			},
		},
		FertilizationSchedule: []entities.FertilizationStage{
			{Stage: "Sowing", TimingDays: 0, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO DAP", NPK: "18-46-0", QuantityPerAcre: 45, Unit: "kg"},
				{Name: "Potash", NPK: "0-0-60", QuantityPerAcre: 15, Unit: "kg"},
			}},
			{Stage: "Flowering (35 Days)", TimingDays: 35, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 12, Unit: "kg"},
			}},
		},
		IrrigationSchedule: map[string]entities.IrrigationStage{
			"germination": {FrequencyDays: 10, WaterMM: 40},
			"vegetative":  {FrequencyDays: 12, WaterMM: 50},
			"flowering":   {FrequencyDays: 10, WaterMM: 60},
			"pod_filling": {FrequencyDays: 10, WaterMM: 50},
		},
		CommonDiseases: map[string]entities.Disease{
			"yellow_mosaic_virus": {
				Symptoms:          []string{"yellow mottling on leaves", "stunted growth", "reduced pods"},
				TreatmentChemical: "Control whitefly vector with Imidacloprid @ 0.3ml/liter",
				TreatmentOrganic:  "Neem oil spray @ 5ml/liter",
				Prevention:        []string{"Resistant varieties", "Control whitefly", "Remove infected plants"},
			},
			"rust": {
				Symptoms:          []string{"reddish-brown pustules", "leaf drop", "yield loss"},
				TreatmentChemical: "Hexaconazole @ 1ml/liter",
				TreatmentOrganic:  "Sulfur dust @ 20kg/acre",
				Prevention:        []string{"Timely sowing", "Resistant varieties"},
			},
		},
		HarvestIndicators: entities.HarvestIndicators{
			MaturityDays:  100,
			PhysicalSigns: []string{"75% pods brown", "Leaves fall", "Rattling pods"},
		},
		MarketCalendar: entities.MarketCalendar{
			PeakDemandMonths:   []int{10, 11, 12},
			AvgPricePerQuintal: 4600, // MSP
			PriceVariation:     &entities.PriceVariation{Peak: 4800, OffSeason: 4400},
		},
		ExpectedYield: entities.Yield{Min: 8, Max: 12, Unit: "quintals/acre"},
	},

	"groundnut": {
		MarathiName:    "भुईमूग",
		ScientificName: "Arachis hypogaea",
		Varieties:      []string{"TAG-24", "Phule Pragati", "JL-24", "Konkan Gaurav"},
		DurationMonths: 4,
		Seasons:        []string{"Kharif (June-October)", "Summer (February-May)"},
		SoilRequirements: entities.SoilRequirement{
			OptimalPH: entities.Range{Min: 6.0, Max: 6.5},
			SoilTypes: []string{"Sandy Loam", "Red", "Black"},
			NPK: entities.NPKRequirement{
				Nitrogen:   entities.Range{Min: 25, Max: 30},
				Phosphorus: entities.Range{Min: 50, Max: 70},
				Potassium:  entities.Range{Min: 40, Max: 50},
			},
		},
		FertilizationSchedule: []entities.FertilizationStage{
			{Stage: "Sowing", TimingDays: 0, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO DAP", NPK: "18-46-0", QuantityPerAcre: 40, Unit: "kg"},
				{Name: "Potash", NPK: "0-0-60", QuantityPerAcre: 20, Unit: "kg"},
				{Name: "Gypsum", NPK: "0-0-0", QuantityPerAcre: 100, Unit: "kg"}, // calcium source
			}},
			{Stage: "Flowering (30 Days)", TimingDays: 30, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 12, Unit: "kg"},
			}},
		},
		IrrigationSchedule: map[string]entities.IrrigationStage{
			"germination":     {FrequencyDays: 5, WaterMM: 30},
			"vegetative":      {FrequencyDays: 10, WaterMM: 40},
			"pegging":         {FrequencyDays: 7, WaterMM: 50},
			"pod_development": {FrequencyDays: 7, WaterMM: 50},
			"maturity":        {FrequencyDays: 12, WaterMM: 30},
		},
		CommonDiseases: map[string]entities.Disease{
			"tikka_disease": {
				Symptoms:          []string{"circular brown spots", "concentric rings", "leaf drop"},
				TreatmentChemical: "Mancozeb @ 2.5g/liter",
				TreatmentOrganic:  "Copper oxychloride @ 3g/liter",
				Prevention:        []string{"Resistant varieties", "Crop rotation", "Proper spacing"},
			},
			"collar_rot": {
				Symptoms:          []string{"rotting at soil level", "wilting", "yellowing"},
				TreatmentChemical: "Carbendazim @ 2g/liter soil drench",
				TreatmentOrganic:  "Trichoderma viride @ 5g/liter",
				Prevention:        []string{"Seed treatment", "Avoid waterlogging", "Crop rotation"},
			},
		},
		HarvestIndicators: entities.HarvestIndicators{
			MaturityDays:  120,
			PhysicalSigns: []string{"Yellow leaves", "Brown pod shells", "Dark veination on pods"},
		},
		MarketCalendar: entities.MarketCalendar{
			PeakDemandMonths:   []int{10, 11, 12, 3, 4},
			AvgPricePerQuintal: 6100, // MSP
			PriceVariation:     &entities.PriceVariation{Peak: 6500, OffSeason: 5800},
		},
		ExpectedYield: entities.Yield{Min: 10, Max: 15, Unit: "quintals/acre"},
	},

	"sunflower": {
		MarathiName:    "सूर्यफूल",
		ScientificName: "Helianthus annuus",
		Varieties:      []string{"KBSH-44", "Phule Bhaskar", "LSFH-171", "Bhanu"},
		DurationMonths: 3,
		Seasons:        []string{"Kharif (June-September)", "Rabi (October-January)", "Summer (February-May)"},
		SoilRequirements: entities.SoilRequirement{
			OptimalPH: entities.Range{Min: 6.5, Max: 8.0},
			SoilTypes: []string{"Black", "Red", "Alluvial"},
			NPK: entities.NPKRequirement{
				Nitrogen:   entities.Range{Min: 60, Max: 80},
				Phosphorus: entities.Range{Min: 40, Max: 60},
				Potassium:  entities.Range{Min: 40, Max: 50},
			},
		},
		FertilizationSchedule: []entities.FertilizationStage{
			{Stage: "Sowing", TimingDays: 0, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO DAP", NPK: "18-46-0", QuantityPerAcre: 35, Unit: "kg"},
				{Name: "Potash", NPK: "0-0-60", QuantityPerAcre: 20, Unit: "kg"},
			}},
			{Stage: "30 Days After Sowing", TimingDays: 30, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 35, Unit: "kg"},
			}},
		},
		IrrigationSchedule: map[string]entities.IrrigationStage{
			"germination":  {FrequencyDays: 5, WaterMM: 30},
			"vegetative":   {FrequencyDays: 10, WaterMM: 40},
			"flowering":    {FrequencyDays: 7, WaterMM: 50},
			"seed_filling": {FrequencyDays: 7, WaterMM: 50},
			"maturity":     {FrequencyDays: 12, WaterMM: 30},
		},
		CommonDiseases: map[string]entities.Disease{
			"alternaria_blight": {
				Symptoms:          []string{"dark brown spots", "concentric rings", "leaf blight"},
				TreatmentChemical: "Mancozeb @ 2.5g/liter",
				TreatmentOrganic:  "Neem oil @ 5ml/liter",
				Prevention:        []string{"Resistant varieties", "Crop rotation", "Destroy crop residue"},
			},
			"downy_mildew": {
				Symptoms:          []string{"white downy growth", "pale green areas", "stunting"},
				TreatmentChemical: "Metalaxyl @ 2g/liter",
				TreatmentOrganic:  "Remove and destroy infected plants",
				Prevention:        []string{"Seed treatment", "Avoid overhead irrigation"},
			},
		},
		HarvestIndicators: entities.HarvestIndicators{
			MaturityDays:  90,
			PhysicalSigns: []string{"Back of head turns yellow-brown", "Bracts turn brown", "Moisture 18-20%"},
		},
		MarketCalendar: entities.MarketCalendar{
			PeakDemandMonths:   []int{1, 2, 3, 9, 10},
			AvgPricePerQuintal: 6760, // MSP
			PriceVariation:     &entities.PriceVariation{Peak: 7000, OffSeason: 6500},
		},
		ExpectedYield: entities.Yield{Min: 8, Max: 12, Unit: "quintals/acre"},
	},

	"gram": {
		MarathiName:    "हरभरा",
		ScientificName: "Cicer arietinum",
		Varieties:      []string{"Vijay", "Virat", "Digvijay", "Phule G-5"},
		DurationMonths: 4,
		Seasons:        []string{"Rabi (October-February)"},
		SoilRequirements: entities.SoilRequirement{
			OptimalPH: entities.Range{Min: 6.0, Max: 7.5},
			SoilTypes: []string{"Black", "Loamy", "Clayey"},
			NPK: entities.NPKRequirement{
				Nitrogen:   entities.Range{Min: 20, Max: 25},
				Phosphorus: entities.Range{Min: 40, Max: 50},
				Potassium:  entities.Range{Min: 20, Max: 25},
			},
		},
		FertilizationSchedule: []entities.FertilizationStage{
			{Stage: "Sowing", TimingDays: 0, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO DAP", NPK: "18-46-0", QuantityPerAcre: 30, Unit: "kg"},
				{Name: "Potash", NPK: "0-0-60", QuantityPerAcre: 10, Unit: "kg"},
			}},
			{Stage: "Flowering (40 Days)", TimingDays: 40, Fertilizers: []entities.FertilizerDose{
				{Name: "IFFCO Urea", NPK: "46-0-0", QuantityPerAcre: 10, Unit: "kg"},
			}},
		},
		IrrigationSchedule: map[string]entities.IrrigationStage{
			"pre_sowing":  {FrequencyDays: 0, WaterMM: 50},
			"flowering":   {FrequencyDays: 35, WaterMM: 50},
			"pod_filling": {FrequencyDays: 25, WaterMM: 50},
		},
		CommonDiseases: map[string]entities.Disease{
			"wilt": {
				Symptoms:          []string{"yellowing", "drooping", "wilting", "vascular browning"},
				TreatmentChemical: "Carbendazim @ 2g/liter soil drench",
				TreatmentOrganic:  "Trichoderma @ 5g/liter",
				Prevention:        []string{"Resistant varieties", "Seed treatment", "Crop rotation"},
			},
			"pod_borer": {
				Symptoms:          []string{"holes in pods", "damaged seeds", "webbing"},
				TreatmentChemical: "Quinalphos @ 2ml/liter",
				TreatmentOrganic:  "Bacillus thuringiensis @ 2g/liter, Neem seed kernel extract",
				Prevention:        []string{"Pheromone traps", "Early sowing", "Deep summer ploughing"},
			},
		},
		HarvestIndicators: entities.HarvestIndicators{
			MaturityDays:  110,
			PhysicalSigns: []string{"Pods turn brown", "Leaves dry and fall", "Seeds hard"},
		},
		MarketCalendar: entities.MarketCalendar{
			PeakDemandMonths:   []int{2, 3, 4},
			AvgPricePerQuintal: 5440, // MSP
			PriceVariation:     &entities.PriceVariation{Peak: 5800, OffSeason: 5200},
		},
		ExpectedYield: entities.Yield{Min: 6, Max: 10, Unit: "quintals/acre"},
	},
}
