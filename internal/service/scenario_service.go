package service

import (
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-briefing/internal/models"
	"github.com/noah-isme/campus-briefing/pkg/config"
	appErrors "github.com/noah-isme/campus-briefing/pkg/errors"
)

// ScenarioRequest is the capacity-scenario input.
type ScenarioRequest struct {
	TotalStudents int `validate:"required,gt=0"`
}

// ScenarioService derives a full capacity scenario (students, classrooms,
// areas, cost) from a target enrollment, scaling proportionally from the
// current-enrollment ratios.
type ScenarioService struct {
	planning  config.PlanningConfig
	economics config.EconomicsConfig
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewScenarioService constructs a ScenarioService.
func NewScenarioService(planning config.PlanningConfig, economics config.EconomicsConfig, logger *zap.Logger) *ScenarioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioService{
		planning:  planning,
		economics: economics,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Compute builds the scenario for one enrollment target.
//
// The segment split applies the configured ratios to the first three segments
// independently and defines Secondary as the remainder, so the four segments
// always sum to the target; Secondary absorbs the rounding drift. Rounding is
// applied per step and never corrected downstream.
func (s *ScenarioService) Compute(totalStudents int) (*models.Scenario, error) {
	req := ScenarioRequest{TotalStudents: totalStudents}
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "total students must be positive")
	}

	p := s.planning

	ey := int(math.Round(float64(totalStudents) * p.EarlyYearsRatio))
	pri := int(math.Round(float64(totalStudents) * p.PrimaryRatio))
	inter := int(math.Round(float64(totalStudents) * p.IntermediateRatio))
	sec := totalStudents - ey - pri - inter

	eyCls := s.classrooms(ey, p.EarlyYearsCapacity)
	priCls := s.classrooms(pri, p.StandardCapacity)
	interCls := s.classrooms(inter, p.StandardCapacity)
	secCls := s.classrooms(sec, p.StandardCapacity)
	totalCls := eyCls + priCls + interCls + secCls

	teachingNet := float64(eyCls)*p.EarlyYearsRoomArea +
		float64(priCls+interCls+secCls)*p.StandardRoomArea

	// Specialist labs come out of the non-early-years classroom count and are
	// doubled for the separate boys and girls wings. The uniform lab area
	// here is a deliberate scenario-model simplification; the pricing catalog
	// carries the per-level lab areas.
	gradedCls := priCls + interCls + secCls
	scienceLabs := int(math.Ceil(float64(gradedCls)/float64(p.LabsPerClassrooms))) * 2
	ictLabs := int(math.Ceil(float64(gradedCls)/float64(p.ICTPerClassrooms))) * 2
	labsNet := float64(scienceLabs) * p.LabArea
	ictNet := float64(ictLabs) * p.LabArea

	// Support and shared spaces scale from the 7,000-student baselines; admin,
	// IT/ops, sports and the auditorium carry large fixed components and are
	// floored rather than shrinking proportionally.
	scale := float64(totalStudents) / float64(p.BaselineStudents)
	senNet := math.Round(p.SENBaseline * scale)
	adminNet := math.Round(p.AdminBaseline * math.Max(scale, p.AdminFloor))
	staffNet := math.Round(p.StaffBaseline * scale)
	itOpsNet := math.Round(p.ITOpsBaseline * math.Max(scale, p.AdminFloor))
	foodNet := math.Round(p.FoodBaseline * scale)
	sportsNet := math.Round(p.SportsBaseline * math.Max(scale, p.SharedFloor))
	auditNet := math.Round(p.AuditoriumBaseline * math.Max(scale, p.SharedFloor))

	totalNet := teachingNet + labsNet + ictNet + senNet + adminNet + staffNet +
		itOpsNet + foodNet + sportsNet + auditNet

	// Grossing is applied per category before summing, not as a blended
	// factor on the total: the category mix shifts with enrollment, so a
	// single average factor would not reproduce these figures.
	academicGross := (teachingNet + labsNet + ictNet + senNet + adminNet + staffNet) * s.economics.GrossingAcademic
	highServiceGross := (foodNet + sportsNet + auditNet) * s.economics.GrossingHighService
	opsGross := itOpsNet * s.economics.GrossingOperations
	totalGross := academicGross + highServiceGross + opsGross

	costLow := int(math.Round(totalGross * p.CostLowPerM2 / 1e6))
	costHigh := int(math.Round(totalGross * p.CostHighPerM2 / 1e6))

	footprint := int(math.Round(totalGross / float64(p.FloorCount)))
	coverage := int(math.Round(float64(footprint) / p.PlotArea * 100))

	scenario := &models.Scenario{
		TotalStudents: totalStudents,

		EarlyYears:   models.SegmentPlan{Segment: models.SegmentEarlyYears, Students: ey, Classrooms: eyCls},
		Primary:      models.SegmentPlan{Segment: models.SegmentPrimary, Students: pri, Classrooms: priCls},
		Intermediate: models.SegmentPlan{Segment: models.SegmentIntermediate, Students: inter, Classrooms: interCls},
		Secondary:    models.SegmentPlan{Segment: models.SegmentSecondary, Students: sec, Classrooms: secCls},

		TotalClassrooms: totalCls,
		ScienceLabs:     scienceLabs,
		ICTLabs:         ictLabs,

		TeachingNet:   int(math.Round(teachingNet)),
		SpecialistNet: int(labsNet + ictNet),
		SupportNet:    int(senNet + adminNet + staffNet + itOpsNet),
		SharedNet:     int(foodNet + sportsNet + auditNet),

		TotalNet:   int(math.Round(totalNet)),
		TotalGross: int(math.Round(totalGross)),

		Footprint:   footprint,
		CoveragePct: coverage,

		CostLowSARm:  costLow,
		CostHighSARm: costHigh,
	}

	s.logger.Debug("scenario computed",
		zap.Int("total_students", totalStudents),
		zap.Int("total_classrooms", totalCls),
		zap.Int("total_gross", scenario.TotalGross),
	)

	return scenario, nil
}

// ComputeAll evaluates the configured scenario targets in order.
func (s *ScenarioService) ComputeAll() ([]models.Scenario, error) {
	scenarios := make([]models.Scenario, 0, len(s.planning.ScenarioTargets))
	for _, target := range s.planning.ScenarioTargets {
		scenario, err := s.Compute(target)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, *scenario)
	}
	return scenarios, nil
}

// classrooms applies the per-class capacity plus the operational buffer
// (swing space, one class per wing out of rotation).
func (s *ScenarioService) classrooms(students, capacity int) int {
	return int(math.Ceil(float64(students) / float64(capacity) * s.planning.ClassroomBuffer))
}
