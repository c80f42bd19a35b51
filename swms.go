package policygen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ElSguidge/policygen/internal/section"
)

// SWMSKind selects the document variant.
type SWMSKind string

// Document variants.
const (
	KindSWMS SWMSKind = "swms"
	KindJSA  SWMSKind = "jsa"
	KindRAMS SWMSKind = "rams"
)

// Title returns the document title for the variant.
func (k SWMSKind) Title() string {
	switch SWMSKind(strings.ToLower(string(k))) {
	case KindJSA:
		return "Job Safety Analysis (JSA)"
	case KindRAMS:
		return "Risk Assessment and Method Statement (RAMS)"
	}
	return "Safe Work Method Statement (SWMS)"
}

// safetyNotice closes safety documents.
const safetyNotice = "*This document was generated from a template. It must be reviewed by a competent person " +
	"and adapted to site-specific conditions before work starts. It does not replace advice from a qualified " +
	"work health and safety professional.*"

// signOffRows is the number of blank sign-off rows printed when no workers are listed.
const signOffRows = 5

// WorkStep is one row of the risk-assessment table.
type WorkStep struct {
	Step         string    `yaml:"step"`
	Hazards      []string  `yaml:"hazards"`
	InitialRisk  RiskLevel `yaml:"initialRisk"`
	Controls     []string  `yaml:"controls"`
	ResidualRisk RiskLevel `yaml:"residualRisk"`
	Responsible  string    `yaml:"responsible"`
}

// IsComplete reports whether the step has a description, a hazard and a control.
func (w WorkStep) IsComplete() bool {
	return strings.TrimSpace(w.Step) != "" && hasText(w.Hazards) && hasText(w.Controls)
}

func hasText(items []string) bool {
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// row renders the step as a risk-assessment table row.
func (w WorkStep) row() []string {
	return []string{
		section.Fallback(w.Step, section.NotApplicable),
		joinCell(w.Hazards),
		w.InitialRisk.Label(),
		joinCell(w.Controls),
		w.ResidualRisk.Label(),
		section.Fallback(w.Responsible, section.NotApplicable),
	}
}

// joinCell joins non-blank items with "; ", or returns N/A.
func joinCell(items []string) string {
	kept := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return section.NotApplicable
	}
	return strings.Join(kept, "; ")
}

// EmergencyDetails holds the site emergency arrangements.
type EmergencyDetails struct {
	AssemblyPoint   string `yaml:"assemblyPoint"`
	FirstAidOfficer string `yaml:"firstAidOfficer"`
	FirstAidKit     string `yaml:"firstAidKit"`
	NearestHospital string `yaml:"nearestHospital"`
	EmergencyPhone  string `yaml:"emergencyPhone"`
}

// SWMSConfig holds the answers that drive a safe work method statement.
type SWMSConfig struct {
	Kind SWMSKind `yaml:"kind" validate:"omitempty,oneof=swms jsa rams"`

	CompanyName   string `yaml:"companyName" validate:"required"`
	ABN           string `yaml:"abn"`
	WebsiteURL    string `yaml:"websiteUrl"`
	Email         string `yaml:"email" validate:"required,email"`
	Address       string `yaml:"address" validate:"required_without_all=WebsiteURL SiteAddress"`
	Phone         string `yaml:"phone"`
	EffectiveDate string `yaml:"effectiveDate"`
	ReviewDate    string `yaml:"reviewDate"`

	ProjectName         string `yaml:"projectName"`
	SiteAddress         string `yaml:"siteAddress"`
	PrincipalContractor string `yaml:"principalContractor"`
	JobDescription      string `yaml:"jobDescription"`
	PreparedBy          string `yaml:"preparedBy"`
	Supervisor          string `yaml:"supervisor"`
	SupervisorPhone     string `yaml:"supervisorPhone"`

	HighRiskWork  []string     `yaml:"highRiskWork"`
	PPE           PPESelection `yaml:"ppe"`
	AdditionalPPE []string     `yaml:"additionalPpe"`
	WorkSteps     []WorkStep   `yaml:"workSteps"`

	Plant                 []string         `yaml:"plant"`
	Permits               []string         `yaml:"permits"`
	Qualifications        []string         `yaml:"qualifications"`
	IncludeEmergency      bool             `yaml:"includeEmergency"`
	Emergency             EmergencyDetails `yaml:"emergency"`
	EnvironmentalControls []string         `yaml:"environmentalControls"`
	Workers               []string         `yaml:"workers"`
}

// DefaultSWMSConfig returns the wizard defaults with the standard PPE set.
func DefaultSWMSConfig() SWMSConfig {
	return SWMSConfig{
		Kind: KindSWMS,
		PPE: PPESelection{
			HardHat:       true,
			SafetyGlasses: true,
			HighVis:       true,
			SafetyBoots:   true,
			Gloves:        true,
		},
		IncludeEmergency: true,
		Emergency:        EmergencyDetails{EmergencyPhone: "000"},
	}
}

// Type implements Config.
func (c SWMSConfig) Type() DocumentType { return TypeSWMS }

// Validate implements Config. Besides field checks, every work step
// must be complete and use a known risk level.
func (c SWMSConfig) Validate() error {
	errs := []error{validateStruct(c)}
	for i, w := range c.WorkSteps {
		if !w.IsComplete() {
			errs = append(errs, fmt.Errorf("%w: workSteps[%d]", ErrIncompleteWorkStep, i))
		}
		for _, r := range []struct {
			field string
			level RiskLevel
		}{{"initialRisk", w.InitialRisk}, {"residualRisk", w.ResidualRisk}} {
			if !r.level.Valid() {
				errs = append(errs, fmt.Errorf("%w: workSteps[%d].%s = %q", ErrInvalidValue, i, r.field, r.level))
			}
		}
	}
	return errors.Join(errs...)
}

// GenerateSWMS assembles a safe work method statement.
func GenerateSWMS(c SWMSConfig) string {
	return Generate(c)
}

// highRiskRows returns every HRCW category with its marker, followed by
// unrecognised selections as extra checked rows. It returns nil when
// nothing is selected.
func (c SWMSConfig) highRiskRows() [][]string {
	selected := make([]bool, len(HighRiskWorkCategories))
	var extra []string
	picked := false
	for _, s := range c.HighRiskWork {
		if strings.TrimSpace(s) == "" {
			continue
		}
		picked = true
		if i, ok := findHighRiskWork(s); ok {
			selected[i] = true
			continue
		}
		extra = append(extra, strings.TrimSpace(s))
	}
	if !picked {
		return nil
	}

	rows := make([][]string, 0, len(HighRiskWorkCategories)+len(extra))
	for i, cat := range HighRiskWorkCategories {
		mark := unchecked
		if selected[i] {
			mark = checked
		}
		rows = append(rows, []string{mark, cat.Label})
	}
	for _, e := range extra {
		rows = append(rows, []string{checked, e})
	}
	return rows
}

func (c SWMSConfig) document() section.Document {
	hrcw := c.highRiskRows()
	return section.Document{
		Header: c.header(),
		Nodes: []section.Node{
			{ID: "scope", Title: "Scope of Work", Include: true, Body: c.scope},
			{ID: "hrcw", Title: "High Risk Construction Work", Include: len(hrcw) > 0, Body: func(n section.Numbering) string {
				return section.Join(
					"This work involves the High Risk Construction Work marked below. Controls for each are set out in "+
						n.Ref("risk-assessment")+".",
					section.Table(true, []string{"Selected", "Category"}, hrcw),
				)
			}},
			{ID: "ppe", Title: "Personal Protective Equipment", Include: true, Body: c.ppe},
			{ID: "plant", Title: "Plant and Equipment", Include: hasText(c.Plant), Body: func(section.Numbering) string {
				return section.Join(
					"The following plant and equipment will be used. All items must be inspected before use and tagged "+
						"out if faulty.",
					section.List(true, c.Plant),
				)
			}},
			{ID: "risk-assessment", Title: "Risk Assessment", Include: true, Body: c.riskAssessment},
			{ID: "permits", Title: "Permits and Approvals", Include: hasText(c.Permits), Body: func(section.Numbering) string {
				return section.Join("The following permits must be in place before the related work starts:", section.List(true, c.Permits))
			}},
			{ID: "training", Title: "Training and Competency", Include: hasText(c.Qualifications), Body: func(section.Numbering) string {
				return section.Join(
					"Workers must hold the following licences, tickets or qualifications, and copies must be available on site:",
					section.List(true, c.Qualifications),
				)
			}},
			{ID: "emergency", Title: "Emergency Procedures", Include: c.IncludeEmergency, Body: c.emergency},
			{ID: "environmental", Title: "Environmental Controls", Include: hasText(c.EnvironmentalControls), Body: func(section.Numbering) string {
				return section.Join("The following environmental controls apply:", section.List(true, c.EnvironmentalControls))
			}},
			{ID: "sign-off", Title: "Consultation and Sign-Off", Include: true, Body: c.signOff},
			{ID: "risk-matrix", Title: "Risk Matrix", Include: true, Body: riskMatrixBody},
			{ID: "hierarchy", Title: "Hierarchy of Controls", Include: true, Body: func(section.Numbering) string {
				return section.Join(
					"Controls must be chosen from the highest practicable level. Lower-level controls are used only "+
						"when higher ones are not reasonably practicable.",
					section.Table(true, []string{"Level", "Control", "Example"}, hierarchyOfControls),
				)
			}},
		},
		Footer: safetyNotice,
	}
}

// header renders the title and project metadata table.
func (c SWMSConfig) header() string {
	field := func(v string) string { return section.Fallback(v, section.Placeholder) }
	contactLine := field(c.Email)
	if phone := strings.TrimSpace(c.Phone); phone != "" {
		contactLine += ", " + phone
	}
	site := c.SiteAddress
	if strings.TrimSpace(site) == "" {
		site = c.Address
	}
	supervisor := field(c.Supervisor)
	if phone := strings.TrimSpace(c.SupervisorPhone); phone != "" {
		supervisor += " (" + phone + ")"
	}

	rows := [][]string{
		{"Company", field(c.CompanyName)},
		{"ABN", field(c.ABN)},
		{"Contact", contactLine},
		{"Project", field(c.ProjectName)},
		{"Site Address", field(site)},
		{"Principal Contractor", field(c.PrincipalContractor)},
		{"Prepared By", field(c.PreparedBy)},
		{"Date Prepared", displayDate(c.EffectiveDate)},
		{"Review Date", displayDate(c.ReviewDate)},
		{"Supervisor", supervisor},
	}
	if w := strings.TrimSpace(c.WebsiteURL); w != "" {
		rows = append(rows, []string{"Website", w})
	}
	return section.Join(
		"# "+c.Kind.Title(),
		section.Table(true, []string{"Field", "Details"}, rows),
	)
}

func (c SWMSConfig) scope(section.Numbering) string {
	return section.Join(
		section.Fallback(c.JobDescription, section.Placeholder),
		"This statement describes how the work will be carried out safely. Work must stop and this statement must "+
			"be reviewed if the scope, method or conditions change, or if a control is found to be ineffective.",
	)
}

func (c SWMSConfig) ppe(section.Numbering) string {
	items := c.PPE.items()
	rows := make([][]string, 0, len(items)+len(c.AdditionalPPE))
	for _, it := range items {
		rows = append(rows, []string{it.Item, it.Standard})
	}
	for _, extra := range c.AdditionalPPE {
		if extra = strings.TrimSpace(extra); extra != "" {
			rows = append(rows, []string{extra, section.NotApplicable})
		}
	}
	if len(rows) == 0 {
		return "No task-specific personal protective equipment has been identified. Site minimum PPE requirements still apply."
	}
	return section.Join(
		"The following PPE must be worn for this work. PPE must be in good condition and fitted correctly.",
		section.Table(true, []string{"PPE Item", "Standard"}, rows),
	)
}

func (c SWMSConfig) riskAssessment(n section.Numbering) string {
	rows := make([][]string, len(c.WorkSteps))
	for i, w := range c.WorkSteps {
		rows[i] = w.row()
	}
	intro := "Each step of the work is assessed below. Risk levels are rated using " + n.Ref("risk-matrix") +
		", and controls follow " + n.Ref("hierarchy") + "."
	if len(rows) == 0 {
		return section.Join(intro, "No work steps have been recorded.")
	}
	return section.Join(
		intro,
		section.Table(true, []string{"Task / Step", "Hazards", "Initial Risk", "Control Measures", "Residual Risk", "Responsible"}, rows),
	)
}

func (c SWMSConfig) emergency(section.Numbering) string {
	e := c.Emergency
	field := func(v string) string { return section.Fallback(v, section.Placeholder) }
	return section.Join(
		"In an emergency, stop work, make the area safe if it is safe to do so, and call "+field(e.EmergencyPhone)+".",
		section.Table(true, []string{"Item", "Details"}, [][]string{
			{"Emergency phone", field(e.EmergencyPhone)},
			{"Assembly point", field(e.AssemblyPoint)},
			{"First aid officer", field(e.FirstAidOfficer)},
			{"First aid kit location", field(e.FirstAidKit)},
			{"Nearest hospital", field(e.NearestHospital)},
		}),
		"All incidents and near misses must be reported to the supervisor immediately.",
	)
}

func (c SWMSConfig) signOff(section.Numbering) string {
	var rows [][]string
	for _, w := range c.Workers {
		if w = strings.TrimSpace(w); w != "" {
			rows = append(rows, []string{w, "", "", ""})
		}
	}
	if len(rows) == 0 {
		for range signOffRows {
			rows = append(rows, []string{"", "", "", ""})
		}
	}
	return section.Join(
		"This statement was developed in consultation with the workers carrying out the work. By signing below, "+
			"each worker confirms they have read and understood it and will follow the controls it describes.",
		section.Table(true, []string{"Name", "Company / Role", "Signature", "Date"}, rows),
	)
}

func riskMatrixBody(section.Numbering) string {
	header := append([]string{"Likelihood"}, consequences...)
	rows := make([][]string, len(likelihoods))
	for i, l := range likelihoods {
		row := []string{l}
		for _, level := range riskMatrix[i] {
			row = append(row, level.Label())
		}
		rows[i] = row
	}
	actions := make([][]string, len(riskActions))
	for i, a := range riskActions {
		actions[i] = []string{a.Level.Label(), a.Action}
	}
	return section.Join(
		"Risk is rated by combining how likely an incident is with how severe its consequences would be.",
		section.Table(true, header, rows),
		section.Table(true, []string{"Risk Level", "Required Action"}, actions),
	)
}
