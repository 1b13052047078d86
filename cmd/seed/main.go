package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicswipe/internal/config"
	"civicswipe/internal/model"
	"civicswipe/internal/repository"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)

	specRepo := repository.NewSpecRepo(db)
	ballotRepo := repository.NewBallotRepo(db)

	spec := buildSpec()
	if err := specRepo.Insert(ctx, spec); err != nil {
		log.Fatalf("Failed to insert spec: %v", err)
	}
	log.Printf("Inserted spec v%d: %d domains, %d axes, %d items",
		spec.Version, len(spec.Domains), len(spec.Axes), len(spec.Items))

	election, items := buildElection()
	if err := ballotRepo.InsertElection(ctx, election); err != nil {
		log.Fatalf("Failed to insert election: %v", err)
	}
	for _, item := range items {
		if err := ballotRepo.InsertItem(ctx, item); err != nil {
			log.Fatalf("Failed to insert ballot item %s: %v", item.ID, err)
		}
	}
	log.Printf("Inserted election %q with %d ballot items", election.Name, len(items))
}

func buildSpec() *model.Spec {
	return &model.Spec{
		Version: 1,
		Domains: []model.Domain{
			{ID: "economy", Title: "Economy & Taxes", Importance: 7},
			{ID: "healthcare", Title: "Healthcare", Importance: 8},
			{ID: "environment", Title: "Environment & Energy", Importance: 7},
			{ID: "education", Title: "Education", Importance: 6},
			{ID: "housing", Title: "Housing", Importance: 6},
			{ID: "justice", Title: "Public Safety & Justice", Importance: 6},
			{ID: "governance", Title: "Government & Democracy", Importance: 5},
		},
		Axes: []model.Axis{
			{
				ID: "tax_structure", DomainID: "economy", Title: "Tax Structure",
				PoleA:         model.Pole{Label: "Lower taxes", Summary: "Keep taxes low and let markets allocate resources"},
				PoleB:         model.Pole{Label: "Public investment", Summary: "Raise revenue for public programs and infrastructure"},
				MetaDimension: model.MetaResponsibility, MetaPolarity: -1,
			},
			{
				ID: "labor_market", DomainID: "economy", Title: "Labor Market",
				PoleA:         model.Pole{Label: "Flexible markets", Summary: "Light-touch employment rules to encourage hiring"},
				PoleB:         model.Pole{Label: "Worker protections", Summary: "Strong minimum standards, unions, and job security"},
				MetaDimension: model.MetaResponsibility, MetaPolarity: -1,
			},
			{
				ID: "healthcare_provision", DomainID: "healthcare", Title: "Healthcare Provision",
				PoleA:         model.Pole{Label: "Private insurance", Summary: "Competition among private insurers and providers"},
				PoleB:         model.Pole{Label: "Universal coverage", Summary: "Publicly funded coverage for everyone"},
				MetaDimension: model.MetaResponsibility, MetaPolarity: -1,
			},
			{
				ID: "mental_health", DomainID: "healthcare", Title: "Mental Health Services",
				PoleA:         model.Pole{Label: "Community-led", Summary: "Nonprofits and community groups lead mental health care"},
				PoleB:         model.Pole{Label: "Public system", Summary: "Expand publicly run mental health services"},
				MetaDimension: model.MetaResponsibility, MetaPolarity: -1,
			},
			{
				ID: "climate_policy", DomainID: "environment", Title: "Climate Policy Pace",
				PoleA:         model.Pole{Label: "Gradual transition", Summary: "Phase in climate measures to limit economic disruption"},
				PoleB:         model.Pole{Label: "Rapid decarbonization", Summary: "Aggressive near-term targets even at higher cost"},
				MetaDimension: model.MetaChangeTempo, MetaPolarity: -1,
			},
			{
				ID: "energy_mix", DomainID: "environment", Title: "Energy Mix",
				PoleA:         model.Pole{Label: "All of the above", Summary: "Keep every energy source on the table during transition"},
				PoleB:         model.Pole{Label: "Renewables first", Summary: "Mandate a rapid shift to renewable generation"},
				MetaDimension: model.MetaChangeTempo, MetaPolarity: -1,
			},
			{
				ID: "school_choice", DomainID: "education", Title: "School Choice",
				PoleA:         model.Pole{Label: "Parent choice", Summary: "Vouchers and charters let funding follow the student"},
				PoleB:         model.Pole{Label: "Public schools", Summary: "Concentrate funding in neighborhood public schools"},
				MetaDimension: model.MetaResponsibility, MetaPolarity: -1,
			},
			{
				ID: "curriculum_control", DomainID: "education", Title: "Curriculum Control",
				PoleA:         model.Pole{Label: "Local control", Summary: "Districts and communities set what is taught"},
				PoleB:         model.Pole{Label: "Common standards", Summary: "Statewide or national standards for every school"},
				MetaDimension: model.MetaGovernance, MetaPolarity: 1,
			},
			{
				ID: "zoning_reform", DomainID: "housing", Title: "Zoning Reform",
				PoleA:         model.Pole{Label: "Neighborhood character", Summary: "Preserve existing zoning and local review"},
				PoleB:         model.Pole{Label: "Build more housing", Summary: "Upzone broadly to allow denser housing everywhere"},
				MetaDimension: model.MetaChangeTempo, MetaPolarity: -1,
			},
			{
				ID: "public_housing", DomainID: "housing", Title: "Housing Affordability",
				PoleA:         model.Pole{Label: "Market supply", Summary: "Affordability comes from private construction"},
				PoleB:         model.Pole{Label: "Public investment", Summary: "Direct public funding for affordable housing"},
				MetaDimension: model.MetaResponsibility, MetaPolarity: -1,
			},
			{
				ID: "policing", DomainID: "justice", Title: "Policing Approach",
				PoleA:         model.Pole{Label: "More enforcement", Summary: "Expand police staffing and enforcement"},
				PoleB:         model.Pole{Label: "Prevention first", Summary: "Shift resources toward prevention and social services"},
				MetaDimension: model.MetaChangeTempo, MetaPolarity: -1,
			},
			{
				ID: "sentencing", DomainID: "justice", Title: "Sentencing Philosophy",
				PoleA:         model.Pole{Label: "Accountability", Summary: "Firm sentences deter crime and hold offenders accountable"},
				PoleB:         model.Pole{Label: "Rehabilitation", Summary: "Shorter sentences with rehabilitation and reentry support"},
				MetaDimension: model.MetaResponsibility, MetaPolarity: -1,
			},
			{
				ID: "direct_democracy", DomainID: "governance", Title: "Direct Democracy",
				PoleA:         model.Pole{Label: "Representative decisions", Summary: "Elected officials and institutions decide policy"},
				PoleB:         model.Pole{Label: "Ballot measures", Summary: "Voters decide more questions directly at the ballot"},
				MetaDimension: model.MetaGovernance, MetaPolarity: -1,
			},
			{
				ID: "federal_power", DomainID: "governance", Title: "Level of Government",
				PoleA:         model.Pole{Label: "Local authority", Summary: "Push decisions down to states and cities"},
				PoleB:         model.Pole{Label: "National standards", Summary: "Set uniform national policy on major issues"},
				MetaDimension: model.MetaGovernance, MetaPolarity: 1,
			},
		},
		Items: []model.Item{
			// Economy
			{ID: "it-tax-01", Text: "Taxes on high incomes should be cut to encourage investment.", AxisKeys: map[string]int{"tax_structure": 1}, Level: model.LevelFederal},
			{ID: "it-tax-02", Text: "The wealthy should pay significantly more to fund public services.", AxisKeys: map[string]int{"tax_structure": -1}, Level: model.LevelFederal},
			{ID: "it-tax-03", Text: "My city should raise local taxes to fix roads and transit.", AxisKeys: map[string]int{"tax_structure": -1}, Level: model.LevelLocal, Tradeoff: "Better infrastructure now, higher cost of living"},
			{ID: "it-lab-01", Text: "It should be easier for businesses to hire and fire workers.", AxisKeys: map[string]int{"labor_market": 1}, Level: model.LevelFederal},
			{ID: "it-lab-02", Text: "The minimum wage should rise even if some jobs are lost.", AxisKeys: map[string]int{"labor_market": -1}, Level: model.LevelState, Tradeoff: "Higher pay for most, fewer entry-level jobs"},
			{ID: "it-lab-03", Text: "Gig workers should be classified as employees with full benefits.", AxisKeys: map[string]int{"labor_market": -1}, Level: model.LevelState},

			// Healthcare
			{ID: "it-hc-01", Text: "Everyone should get health insurance through a single public plan.", AxisKeys: map[string]int{"healthcare_provision": -1}, Level: model.LevelFederal},
			{ID: "it-hc-02", Text: "Competition between private insurers keeps healthcare quality high.", AxisKeys: map[string]int{"healthcare_provision": 1}, Level: model.LevelFederal},
			{ID: "it-hc-03", Text: "My state should expand public health coverage even if taxes rise.", AxisKeys: map[string]int{"healthcare_provision": -1, "tax_structure": -1}, Level: model.LevelState, Tradeoff: "Broader coverage, higher state taxes"},
			{ID: "it-mh-01", Text: "Mental health crises should be handled by public health teams, not police.", AxisKeys: map[string]int{"mental_health": -1, "policing": -1}, Level: model.LevelLocal},
			{ID: "it-mh-02", Text: "Community organizations, not government, are best placed to run mental health programs.", AxisKeys: map[string]int{"mental_health": 1}, Level: model.LevelLocal},

			// Environment
			{ID: "it-cl-01", Text: "We should reach net-zero emissions as fast as possible, whatever the cost.", AxisKeys: map[string]int{"climate_policy": -1}, Level: model.LevelFederal},
			{ID: "it-cl-02", Text: "Climate rules should be phased in slowly to protect jobs.", AxisKeys: map[string]int{"climate_policy": 1}, Level: model.LevelFederal, Tradeoff: "Job stability now, slower emissions cuts"},
			{ID: "it-cl-03", Text: "New gas car sales should be banned within a decade.", AxisKeys: map[string]int{"climate_policy": -1, "energy_mix": -1}, Level: model.LevelState},
			{ID: "it-en-01", Text: "Utilities should be required to switch to renewable power on a fixed schedule.", AxisKeys: map[string]int{"energy_mix": -1}, Level: model.LevelState},
			{ID: "it-en-02", Text: "Natural gas should stay part of the energy mix during the transition.", AxisKeys: map[string]int{"energy_mix": 1}, Level: model.LevelFederal},

			// Education
			{ID: "it-ed-01", Text: "Public money should follow students to whichever school their family picks.", AxisKeys: map[string]int{"school_choice": 1}, Level: model.LevelState},
			{ID: "it-ed-02", Text: "Charter and voucher programs drain money from neighborhood schools.", AxisKeys: map[string]int{"school_choice": -1}, Level: model.LevelState},
			{ID: "it-ed-03", Text: "Each school district should decide its own curriculum.", AxisKeys: map[string]int{"curriculum_control": 1}, Level: model.LevelLocal},
			{ID: "it-ed-04", Text: "Every school in the country should teach to the same core standards.", AxisKeys: map[string]int{"curriculum_control": -1, "federal_power": -1}, Level: model.LevelFederal},

			// Housing
			{ID: "it-ho-01", Text: "Apartment buildings should be allowed in neighborhoods currently zoned for single-family homes.", AxisKeys: map[string]int{"zoning_reform": -1}, Level: model.LevelLocal, Tradeoff: "More housing supply, changed neighborhood character"},
			{ID: "it-ho-02", Text: "Neighbors should have a real say before dense housing is approved nearby.", AxisKeys: map[string]int{"zoning_reform": 1}, Level: model.LevelLocal},
			{ID: "it-ho-03", Text: "The government should directly build and run affordable housing.", AxisKeys: map[string]int{"public_housing": -1}, Level: model.LevelState},
			{ID: "it-ho-04", Text: "Cutting regulations on private builders is the best way to lower rents.", AxisKeys: map[string]int{"public_housing": 1, "zoning_reform": -1}, Level: model.LevelState},

			// Justice
			{ID: "it-ju-01", Text: "My city should hire more police officers.", AxisKeys: map[string]int{"policing": 1}, Level: model.LevelLocal},
			{ID: "it-ju-02", Text: "Money spent on policing would do more good in prevention and social programs.", AxisKeys: map[string]int{"policing": -1}, Level: model.LevelLocal, Tradeoff: "Long-term prevention, slower emergency response"},
			{ID: "it-ju-03", Text: "Longer prison sentences make communities safer.", AxisKeys: map[string]int{"sentencing": 1}, Level: model.LevelState},
			{ID: "it-ju-04", Text: "Most nonviolent offenders should get treatment and supervision instead of prison.", AxisKeys: map[string]int{"sentencing": -1}, Level: model.LevelState},

			// Governance
			{ID: "it-go-01", Text: "More policy questions should go directly to voters as ballot measures.", AxisKeys: map[string]int{"direct_democracy": -1}, Level: model.LevelState},
			{ID: "it-go-02", Text: "Complex policy is better left to elected officials than decided by referendum.", AxisKeys: map[string]int{"direct_democracy": 1}, Level: model.LevelState},
			{ID: "it-go-03", Text: "States should be free to go their own way on most big issues.", AxisKeys: map[string]int{"federal_power": 1}, Level: model.LevelFederal},
			{ID: "it-go-04", Text: "National problems need uniform national rules, not a patchwork of state laws.", AxisKeys: map[string]int{"federal_power": -1}, Level: model.LevelFederal},
		},
	}
}

func buildElection() (*model.Election, []*model.BallotItem) {
	election := &model.Election{
		ID:   "election-2026-general",
		Name: "2026 General Election",
		Date: time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC),
	}

	items := []*model.BallotItem{
		{
			ID:         "prop-12-transit",
			ElectionID: election.ID,
			Type:       model.BallotProposition,
			Proposition: &model.Proposition{
				Title:        "Proposition 12: Transit Funding",
				Summary:      "Raises the local sales tax by 0.5% to fund bus and rail expansion.",
				RelevantAxes: []string{"tax_structure", "climate_policy"},
				YesAxisEffects: map[string]float64{
					"tax_structure":  1.0,
					"climate_policy": 0.5,
				},
			},
		},
		{
			ID:         "prop-34-housing-bond",
			ElectionID: election.ID,
			Type:       model.BallotProposition,
			Proposition: &model.Proposition{
				Title:        "Proposition 34: Affordable Housing Bond",
				Summary:      "Authorizes a $400M bond for publicly funded affordable housing.",
				RelevantAxes: []string{"public_housing", "tax_structure"},
				YesAxisEffects: map[string]float64{
					"public_housing": 1.0,
					"tax_structure":  0.5,
				},
			},
		},
		{
			ID:         "prop-56-sentencing",
			ElectionID: election.ID,
			Type:       model.BallotProposition,
			Proposition: &model.Proposition{
				Title:        "Proposition 56: Sentencing Reform",
				Summary:      "Replaces mandatory minimums for nonviolent offenses with judicial discretion and treatment programs.",
				RelevantAxes: []string{"sentencing"},
				YesAxisEffects: map[string]float64{
					"sentencing": 1.0,
				},
			},
		},
		{
			ID:         "race-mayor",
			ElectionID: election.ID,
			Type:       model.BallotCandidateRace,
			Race: &model.CandidateRace{
				Office:       "Mayor",
				RelevantAxes: []string{"policing", "zoning_reform", "public_housing", "tax_structure"},
				Candidates: []model.Candidate{
					{
						ID: "cand-rivera", Name: "Ana Rivera", Party: "Progress Party",
						Stances: map[string]int{"policing": 8, "zoning_reform": 8, "public_housing": 9, "tax_structure": 8},
					},
					{
						ID: "cand-okafor", Name: "David Okafor", Party: "Unity Party",
						Stances: map[string]int{"policing": 3, "zoning_reform": 6, "public_housing": 4, "tax_structure": 3},
					},
					{
						ID: "cand-lindqvist", Name: "Maja Lindqvist", Party: "Independent",
						Stances: map[string]int{"policing": 5, "zoning_reform": 7, "public_housing": 6, "tax_structure": 5},
					},
				},
			},
		},
	}

	return election, items
}
