package InputParameters

import (
	"fmt"
	"runtime"

	"github.com/ghodss/yaml"

	"github.com/notargets/goscf/models"
	"github.com/notargets/goscf/quadrature"
)

// Parameters obtained from the YAML input file
type InputParametersSCF struct {
	Title       string             `yaml:"Title"`
	Model       string             `yaml:"Model"`     // One of models.Names()
	ModelArgs   []float64          `yaml:"ModelArgs"` // Extra model parameters, e.g. axis ratio
	M           float64            `yaml:"M"`
	Rs          float64            `yaml:"Rs"`
	G           float64            `yaml:"G"`
	NMax        int                `yaml:"NMax"`
	LMax        int                `yaml:"LMax"`
	Workers     int                `yaml:"Workers"`
	Integrator  string             `yaml:"Integrator"` // "adaptive" or "fixed"
	FixedPoints int                `yaml:"FixedPoints"`
	Quadrature  quadrature.Options `yaml:"Quadrature"`
	Particles   int                `yaml:"Particles"` // Sample size for the discrete path
	Seed        uint64             `yaml:"Seed"`
	Bootstrap   int                `yaml:"Bootstrap"` // Resamples per coefficient, 0 disables
}

func (ip *InputParametersSCF) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.setDefaults()
	return ip.Validate()
}

func (ip *InputParametersSCF) setDefaults() {
	if ip.Model == "" {
		ip.Model = "hernquist"
	}
	if ip.M == 0 {
		ip.M = 1
	}
	if ip.Rs == 0 {
		ip.Rs = 1
	}
	if ip.G == 0 {
		ip.G = 1
	}
	if ip.Workers == 0 {
		ip.Workers = runtime.NumCPU()
	}
	if ip.Integrator == "" {
		ip.Integrator = "adaptive"
	}
	if ip.FixedPoints == 0 {
		ip.FixedPoints = 32
	}
	if ip.Particles == 0 {
		ip.Particles = 100000
	}
}

func (ip *InputParametersSCF) Validate() error {
	if _, err := models.ByName(ip.Model); err != nil {
		return err
	}
	if ip.NMax < 0 || ip.LMax < 0 {
		return fmt.Errorf("NMax = %d and LMax = %d must be non-negative", ip.NMax, ip.LMax)
	}
	if !(ip.M > 0) || !(ip.Rs > 0) {
		return fmt.Errorf("M = %g and Rs = %g must be positive", ip.M, ip.Rs)
	}
	switch ip.Integrator {
	case "adaptive", "fixed":
	default:
		return fmt.Errorf("unknown integrator %q, have adaptive or fixed", ip.Integrator)
	}
	return ip.Quadrature.WithDefaults().Validate()
}

// GetIntegrator returns the quadrature selected by Integrator.
func (ip *InputParametersSCF) GetIntegrator() quadrature.Integrator {
	if ip.Integrator == "fixed" {
		return quadrature.FixedLegendre{Points: ip.FixedPoints}
	}
	return quadrature.Nested{}
}

func (ip *InputParametersSCF) Print() {
	q := ip.Quadrature.WithDefaults()
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s] %v\t\t= Model\n", ip.Model, ip.ModelArgs)
	fmt.Printf("%8.5f\t\t= M\n", ip.M)
	fmt.Printf("%8.5f\t\t= Rs\n", ip.Rs)
	fmt.Printf("%8.5f\t\t= G\n", ip.G)
	fmt.Printf("[%d, %d]\t\t\t= NMax, LMax\n", ip.NMax, ip.LMax)
	fmt.Printf("[%s]\t\t= Integrator\n", ip.Integrator)
	if ip.Integrator == "fixed" {
		fmt.Printf("[%d]\t\t\t= Points per dimension\n", ip.FixedPoints)
	} else {
		fmt.Printf("[%d, %d]\t\t= Limit, Points\n", q.Limit, q.Points)
	}
	fmt.Printf("%8.2e\t\t= EpsRel\n", q.EpsRel)
	fmt.Printf("%8.2e\t\t= EpsAbs\n", q.EpsAbs)
	fmt.Printf("[%d]\t\t\t= Workers\n", ip.Workers)
}
