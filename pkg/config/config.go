package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log       LogConfig
	Output    OutputConfig
	Planning  PlanningConfig
	Economics EconomicsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// OutputConfig controls where and under which names briefing artifacts land.
type OutputConfig struct {
	Dir          string
	WorkbookName string
	DeckName     string
	CSVPrefix    string
}

// PlanningConfig collects the planning assumptions behind the scenario model.
// These are policy figures agreed with the design team, not derived values;
// keeping them named here lets them be revisited without touching the
// arithmetic.
type PlanningConfig struct {
	// Segment distribution ratios derived from the current 5,263 enrollment.
	// Secondary is the remainder and has no ratio of its own.
	EarlyYearsRatio   float64
	PrimaryRatio      float64
	IntermediateRatio float64

	// Classroom sizing.
	EarlyYearsCapacity int
	StandardCapacity   int
	ClassroomBuffer    float64

	// Net area per classroom.
	EarlyYearsRoomArea float64
	StandardRoomArea   float64

	// Specialist labs: one science lab per LabsPerClassrooms and one ICT lab
	// per ICTPerClassrooms among non-early-years classrooms, doubled for the
	// separate boys and girls wings.
	LabArea           float64
	LabsPerClassrooms int
	ICTPerClassrooms  int

	// Support and shared net-area baselines at BaselineStudents enrollment.
	BaselineStudents   int
	SENBaseline        float64
	AdminBaseline      float64
	StaffBaseline      float64
	ITOpsBaseline      float64
	FoodBaseline       float64
	SportsBaseline     float64
	AuditoriumBaseline float64

	// Admin and IT/ops never scale below AdminFloor of their baseline; sports
	// and the auditorium/commons never below SharedFloor.
	AdminFloor  float64
	SharedFloor float64

	// Site assumptions.
	FloorCount int
	PlotArea   float64

	// Construction cost band, SAR per gross m².
	CostLowPerM2  float64
	CostHighPerM2 float64

	// Enrollment targets rendered in the scenario comparison.
	ScenarioTargets []int
}

// EconomicsConfig carries the project-wide economic constants shared by the
// scenario model and the unit pricer.
type EconomicsConfig struct {
	TotalProjectCostSAR float64
	TotalBUA            float64
	SARPerUSD           float64

	GrossingAcademic    float64
	GrossingHighService float64
	GrossingOperations  float64
}

// CostPerBUA returns the blended construction cost per gross m².
func (e EconomicsConfig) CostPerBUA() float64 {
	return e.TotalProjectCostSAR / e.TotalBUA
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Output = OutputConfig{
		Dir:          v.GetString("OUTPUT_DIR"),
		WorkbookName: v.GetString("OUTPUT_WORKBOOK_NAME"),
		DeckName:     v.GetString("OUTPUT_DECK_NAME"),
		CSVPrefix:    v.GetString("OUTPUT_CSV_PREFIX"),
	}

	cfg.Planning = PlanningConfig{
		EarlyYearsRatio:   v.GetFloat64("PLAN_EARLY_YEARS_RATIO"),
		PrimaryRatio:      v.GetFloat64("PLAN_PRIMARY_RATIO"),
		IntermediateRatio: v.GetFloat64("PLAN_INTERMEDIATE_RATIO"),

		EarlyYearsCapacity: v.GetInt("PLAN_EARLY_YEARS_CAPACITY"),
		StandardCapacity:   v.GetInt("PLAN_STANDARD_CAPACITY"),
		ClassroomBuffer:    v.GetFloat64("PLAN_CLASSROOM_BUFFER"),

		EarlyYearsRoomArea: v.GetFloat64("PLAN_EARLY_YEARS_ROOM_AREA"),
		StandardRoomArea:   v.GetFloat64("PLAN_STANDARD_ROOM_AREA"),

		LabArea:           v.GetFloat64("PLAN_LAB_AREA"),
		LabsPerClassrooms: v.GetInt("PLAN_LABS_PER_CLASSROOMS"),
		ICTPerClassrooms:  v.GetInt("PLAN_ICT_PER_CLASSROOMS"),

		BaselineStudents:   v.GetInt("PLAN_BASELINE_STUDENTS"),
		SENBaseline:        v.GetFloat64("PLAN_SEN_BASELINE"),
		AdminBaseline:      v.GetFloat64("PLAN_ADMIN_BASELINE"),
		StaffBaseline:      v.GetFloat64("PLAN_STAFF_BASELINE"),
		ITOpsBaseline:      v.GetFloat64("PLAN_IT_OPS_BASELINE"),
		FoodBaseline:       v.GetFloat64("PLAN_FOOD_BASELINE"),
		SportsBaseline:     v.GetFloat64("PLAN_SPORTS_BASELINE"),
		AuditoriumBaseline: v.GetFloat64("PLAN_AUDITORIUM_BASELINE"),

		AdminFloor:  v.GetFloat64("PLAN_ADMIN_FLOOR"),
		SharedFloor: v.GetFloat64("PLAN_SHARED_FLOOR"),

		FloorCount: v.GetInt("PLAN_FLOOR_COUNT"),
		PlotArea:   v.GetFloat64("PLAN_PLOT_AREA"),

		CostLowPerM2:  v.GetFloat64("PLAN_COST_LOW_PER_M2"),
		CostHighPerM2: v.GetFloat64("PLAN_COST_HIGH_PER_M2"),

		ScenarioTargets: parseIntList(v.GetString("PLAN_SCENARIO_TARGETS")),
	}

	cfg.Economics = EconomicsConfig{
		TotalProjectCostSAR: v.GetFloat64("ECON_TOTAL_PROJECT_COST_SAR"),
		TotalBUA:            v.GetFloat64("ECON_TOTAL_BUA"),
		SARPerUSD:           v.GetFloat64("ECON_SAR_PER_USD"),

		GrossingAcademic:    v.GetFloat64("ECON_GROSSING_ACADEMIC"),
		GrossingHighService: v.GetFloat64("ECON_GROSSING_HIGH_SERVICE"),
		GrossingOperations:  v.GetFloat64("ECON_GROSSING_OPERATIONS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("OUTPUT_DIR", "./briefings")
	v.SetDefault("OUTPUT_WORKBOOK_NAME", "donor_unit_pricing.xlsx")
	v.SetDefault("OUTPUT_DECK_NAME", "ambassador_briefing.pdf")
	v.SetDefault("OUTPUT_CSV_PREFIX", "briefing")

	v.SetDefault("PLAN_EARLY_YEARS_RATIO", 0.152)
	v.SetDefault("PLAN_PRIMARY_RATIO", 0.311)
	v.SetDefault("PLAN_INTERMEDIATE_RATIO", 0.390)

	v.SetDefault("PLAN_EARLY_YEARS_CAPACITY", 22)
	v.SetDefault("PLAN_STANDARD_CAPACITY", 25)
	v.SetDefault("PLAN_CLASSROOM_BUFFER", 1.08)

	v.SetDefault("PLAN_EARLY_YEARS_ROOM_AREA", 55.0)
	v.SetDefault("PLAN_STANDARD_ROOM_AREA", 43.12)

	v.SetDefault("PLAN_LAB_AREA", 65.0)
	v.SetDefault("PLAN_LABS_PER_CLASSROOMS", 10)
	v.SetDefault("PLAN_ICT_PER_CLASSROOMS", 15)

	v.SetDefault("PLAN_BASELINE_STUDENTS", 7000)
	v.SetDefault("PLAN_SEN_BASELINE", 736.0)
	v.SetDefault("PLAN_ADMIN_BASELINE", 672.0)
	v.SetDefault("PLAN_STAFF_BASELINE", 950.0)
	v.SetDefault("PLAN_IT_OPS_BASELINE", 641.0)
	v.SetDefault("PLAN_FOOD_BASELINE", 3380.0)
	v.SetDefault("PLAN_SPORTS_BASELINE", 3981.0)
	v.SetDefault("PLAN_AUDITORIUM_BASELINE", 4070.0)

	v.SetDefault("PLAN_ADMIN_FLOOR", 0.85)
	v.SetDefault("PLAN_SHARED_FLOOR", 0.80)

	v.SetDefault("PLAN_FLOOR_COUNT", 3)
	v.SetDefault("PLAN_PLOT_AREA", 25000.0)

	v.SetDefault("PLAN_COST_LOW_PER_M2", 4580.0)
	v.SetDefault("PLAN_COST_HIGH_PER_M2", 4960.0)

	v.SetDefault("PLAN_SCENARIO_TARGETS", "5500,6000,7000")

	v.SetDefault("ECON_TOTAL_PROJECT_COST_SAR", 250_000_000.0)
	v.SetDefault("ECON_TOTAL_BUA", 52_400.0)
	v.SetDefault("ECON_SAR_PER_USD", 3.75)

	v.SetDefault("ECON_GROSSING_ACADEMIC", 1.45)
	v.SetDefault("ECON_GROSSING_HIGH_SERVICE", 1.65)
	v.SetDefault("ECON_GROSSING_OPERATIONS", 1.55)
}

func parseIntList(raw string) []int {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil || n <= 0 {
			continue
		}
		result = append(result, n)
	}

	return result
}
