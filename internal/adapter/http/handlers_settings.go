package adapthttp

import (
	"net/http"

	"weighttrack/internal/app"
	"weighttrack/internal/domain"
)

func (s *Server) handleSettingsGet(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"settings": settings})
}

func (s *Server) handleSettingsSave(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Height                float64  `json:"height"`
		InitialWeight         float64  `json:"initialWeight"`
		TargetWeight          float64  `json:"targetWeight"`
		TargetDate            flexDate `json:"targetDate"`
		WeeklyWeightLossGoal  *float64 `json:"weeklyWeightLossGoal"`
		MonthlyWeightLossGoal *float64 `json:"monthlyWeightLossGoal"`
		TargetBMI             *float64 `json:"targetBMI"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	settings, err := s.settings.Save(r.Context(), app.SettingsInput{
		Height:                body.Height,
		InitialWeight:         body.InitialWeight,
		TargetWeight:          body.TargetWeight,
		TargetDate:            body.TargetDate.Time,
		WeeklyWeightLossGoal:  body.WeeklyWeightLossGoal,
		MonthlyWeightLossGoal: body.MonthlyWeightLossGoal,
		TargetBMI:             body.TargetBMI,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"settings": settings})
}

func (s *Server) handleGoalsGet(w http.ResponseWriter, r *http.Request) {
	goals, err := s.settings.Goals(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"goals": goals})
}

func (s *Server) handleGoalsUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TargetWeight          *float64  `json:"targetWeight"`
		TargetDate            *flexDate `json:"targetDate"`
		WeeklyWeightLossGoal  *float64  `json:"weeklyWeightLossGoal"`
		MonthlyWeightLossGoal *float64  `json:"monthlyWeightLossGoal"`
		TargetBMI             *float64  `json:"targetBMI"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	goals, err := s.settings.UpdateGoals(r.Context(), domain.GoalsPatch{
		TargetWeight:          body.TargetWeight,
		TargetDate:            body.TargetDate.ptr(),
		WeeklyWeightLossGoal:  body.WeeklyWeightLossGoal,
		MonthlyWeightLossGoal: body.MonthlyWeightLossGoal,
		TargetBMI:             body.TargetBMI,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"goals": goals})
}
