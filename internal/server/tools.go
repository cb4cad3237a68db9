// internal/server/tools.go
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"mcp-ayur-diet/internal/compatibility"
	"mcp-ayur-diet/internal/constitution"
	"mcp-ayur-diet/internal/dietchart"
	"mcp-ayur-diet/internal/models"
	"mcp-ayur-diet/internal/patient"
	"mcp-ayur-diet/internal/recipe"
	"mcp-ayur-diet/internal/symptom"
)

type PatientIDParams struct {
	PatientID string `json:"patient_id" description:"ID of the patient"`
}

type ListPatientsParams struct {
	DoctorID string `json:"doctor_id,omitempty" description:"Only patients of this doctor"`
	Limit    int    `json:"limit,omitempty" description:"Maximum number of patients to return"`
}

type UpdatePatientParams struct {
	PatientID string `json:"patient_id" description:"ID of the patient"`
	patient.Patch
}

type AssessPrakritiParams struct {
	PatientID string           `json:"patient_id,omitempty" description:"Patient whose prakriti is updated with the result"`
	Answers   models.AnswerSet `json:"answers" description:"Question id to chosen option index"`
}

type ScoreFoodParams struct {
	PatientID string `json:"patient_id" description:"ID of the patient"`
	FoodID    string `json:"food_id" description:"Catalogue food id"`
}

type RankFoodsParams struct {
	PatientID string `json:"patient_id" description:"ID of the patient"`
	Category  string `json:"category,omitempty" description:"Only foods in this category"`
	Limit     int    `json:"limit,omitempty" description:"Maximum number of foods to return"`
}

type SearchFoodsParams struct {
	Query string `json:"query,omitempty" description:"Substring of food name or category"`
}

type ListParams struct {
	Limit int `json:"limit,omitempty" description:"Maximum number of items to return"`
}

type LogSymptomsParams struct {
	PatientID string `json:"patient_id" description:"ID of the patient"`
	symptom.Draft
}

type GetSymptomsParams struct {
	PatientID string `json:"patient_id" description:"ID of the patient"`
	Days      int    `json:"days,omitempty" description:"Number of most recent entries (defaults to 7)"`
}

type GenerateDietChartParams struct {
	PatientID    string   `json:"patient_id" description:"ID of the patient"`
	Preferences  []string `json:"preferences,omitempty" description:"Food preferences"`
	Restrictions []string `json:"restrictions,omitempty" description:"Dietary restrictions"`
	Goals        []string `json:"goals,omitempty" description:"Health goals"`
	Duration     int      `json:"duration,omitempty" description:"Plan length in days (defaults to 7)"`
}

type GetDietChartsParams struct {
	PatientID string `json:"patient_id" description:"ID of the patient"`
	Limit     int    `json:"limit,omitempty" description:"Maximum number of charts to return"`
}

// extractParams safely extracts parameters from the request arguments
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal arguments: %v", errInvalidParams, err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("%w: %v", errInvalidParams, err)
	}

	return nil
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", errInvalidParams, name)
	}
	return nil
}

func (s *AyurDietServer) registerTools() {
	s.tools = []tool{
		{"register_patient", "Register a patient from the registration form", s.handleRegisterPatient},
		{"get_patient", "Get a patient profile with past assessments", s.handleGetPatient},
		{"list_patients", "List registered patients", s.handleListPatients},
		{"update_patient", "Update fields of a patient profile", s.handleUpdatePatient},
		{"get_questionnaire", "Get the prakriti assessment questions", s.handleGetQuestionnaire},
		{"assess_prakriti", "Score questionnaire answers into a constitution", s.handleAssessPrakriti},
		{"score_food", "Score how well a food suits a patient", s.handleScoreFood},
		{"rank_foods", "Rank catalogue foods for a patient", s.handleRankFoods},
		{"search_foods", "Search the food catalogue", s.handleSearchFoods},
		{"build_recipe", "Build and save a recipe from catalogue ingredients", s.handleBuildRecipe},
		{"list_recipes", "List saved recipes", s.handleListRecipes},
		{"log_symptoms", "Log a daily symptom entry", s.handleLogSymptoms},
		{"get_symptoms", "Get recent symptom entries in date order", s.handleGetSymptoms},
		{"generate_diet_chart", "Generate a personalized diet chart", s.handleGenerateDietChart},
		{"get_diet_charts", "List a patient's diet charts", s.handleGetDietCharts},
	}

	s.index = make(map[string]toolHandler, len(s.tools))
	for _, t := range s.tools {
		s.index[t.Name] = t.handler
	}
}

func (s *AyurDietServer) handleRegisterPatient(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	form := patient.NewForm()
	if err := extractParams(req, &form); err != nil {
		return nil, err
	}

	p, err := patient.New(form, s.newID(), s.now())
	if err != nil {
		return nil, err
	}

	if err := s.storage.SavePatient(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save patient: %w", err)
	}

	return s.createJSONResponse(p)
}

type patientView struct {
	*models.Patient
	Assessments []*models.Assessment `json:"assessments"`
}

func (s *AyurDietServer) handleGetPatient(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params PatientIDParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if err := required("patient_id", params.PatientID); err != nil {
		return nil, err
	}

	p, err := s.storage.GetPatient(ctx, params.PatientID)
	if err != nil {
		return nil, err
	}

	assessments, err := s.storage.ListAssessments(ctx, p.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve assessments: %w", err)
	}

	return s.createJSONResponse(patientView{Patient: p, Assessments: assessments})
}

func (s *AyurDietServer) handleListPatients(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ListPatientsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	patients, err := s.storage.ListPatients(ctx, params.DoctorID, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve patients: %w", err)
	}

	return s.createJSONResponse(patients)
}

func (s *AyurDietServer) handleUpdatePatient(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params UpdatePatientParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if err := required("patient_id", params.PatientID); err != nil {
		return nil, err
	}

	p, err := s.storage.GetPatient(ctx, params.PatientID)
	if err != nil {
		return nil, err
	}

	if err := patient.Update(p, params.Patch, s.now()); err != nil {
		return nil, err
	}

	if err := s.storage.SavePatient(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save patient: %w", err)
	}

	return s.createJSONResponse(p)
}

func (s *AyurDietServer) handleGetQuestionnaire(_ context.Context, _ *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	return s.createJSONResponse(s.catalog.Current().Questions)
}

func (s *AyurDietServer) handleAssessPrakriti(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params AssessPrakritiParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	result, err := constitution.Score(s.catalog.Current().Questions, params.Answers)
	if err != nil {
		return nil, err
	}

	if params.PatientID == "" {
		return s.createJSONResponse(map[string]interface{}{"result": result})
	}

	p, err := s.storage.GetPatient(ctx, params.PatientID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	assessment := &models.Assessment{
		ID:        s.newID(),
		PatientID: p.ID,
		Answers:   params.Answers,
		Result:    *result,
		CreatedAt: now,
	}
	patient.ApplyAssessment(p, *result, now)

	if err := s.storage.SaveAssessment(ctx, assessment, p); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	return s.createJSONResponse(map[string]interface{}{
		"result":     result,
		"assessment": assessment,
		"patient":    p,
	})
}

type scoredFood struct {
	Food   models.Food                `json:"food"`
	Result models.CompatibilityResult `json:"compatibility"`
	Rating compatibility.Rating       `json:"rating"`
}

func (s *AyurDietServer) handleScoreFood(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ScoreFoodParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if err := required("patient_id", params.PatientID); err != nil {
		return nil, err
	}
	if err := required("food_id", params.FoodID); err != nil {
		return nil, err
	}

	food, ok := s.catalog.Current().Food(params.FoodID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownFood, params.FoodID)
	}

	p, err := s.storage.GetPatient(ctx, params.PatientID)
	if err != nil {
		return nil, err
	}

	result := compatibility.Score(food, *p)
	return s.createJSONResponse(scoredFood{
		Food:   food,
		Result: result,
		Rating: compatibility.RatingFor(result.Score),
	})
}

func (s *AyurDietServer) handleRankFoods(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params RankFoodsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if err := required("patient_id", params.PatientID); err != nil {
		return nil, err
	}

	p, err := s.storage.GetPatient(ctx, params.PatientID)
	if err != nil {
		return nil, err
	}

	foods := s.catalog.Current().Foods
	if params.Category != "" {
		var filtered []models.Food
		for _, f := range foods {
			if strings.EqualFold(f.Category, params.Category) {
				filtered = append(filtered, f)
			}
		}
		foods = filtered
	}

	ranked := compatibility.Rank(foods, *p)
	if params.Limit > 0 && len(ranked) > params.Limit {
		ranked = ranked[:params.Limit]
	}

	return s.createJSONResponse(ranked)
}

func (s *AyurDietServer) handleSearchFoods(_ context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params SearchFoodsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	return s.createJSONResponse(s.catalog.Current().Search(params.Query))
}

func (s *AyurDietServer) handleBuildRecipe(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var draft recipe.Draft
	if err := extractParams(req, &draft); err != nil {
		return nil, err
	}

	r, err := recipe.Build(draft, s.catalog.Current().Food, s.newID(), s.now())
	if err != nil {
		return nil, err
	}

	if err := s.storage.SaveRecipe(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}

	return s.createJSONResponse(r)
}

func (s *AyurDietServer) handleListRecipes(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ListParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	recipes, err := s.storage.ListRecipes(ctx, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve recipes: %w", err)
	}

	return s.createJSONResponse(recipes)
}

func (s *AyurDietServer) handleLogSymptoms(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params LogSymptomsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if err := required("patient_id", params.PatientID); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetPatient(ctx, params.PatientID); err != nil {
		return nil, err
	}

	entry, err := symptom.NewEntry(params.PatientID, params.Draft, s.newID(), s.now())
	if err != nil {
		return nil, err
	}

	if err := s.storage.SaveSymptomEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save symptom entry: %w", err)
	}

	return s.createJSONResponse(entry)
}

func (s *AyurDietServer) handleGetSymptoms(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params GetSymptomsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if err := required("patient_id", params.PatientID); err != nil {
		return nil, err
	}

	days := params.Days
	if days <= 0 {
		days = symptom.TrendWindow
	}

	stored, err := s.storage.ListSymptomEntries(ctx, params.PatientID, days)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve symptom entries: %w", err)
	}

	entries := make([]models.SymptomEntry, len(stored))
	for i, e := range stored {
		entries[i] = *e
	}

	return s.createJSONResponse(symptom.Recent(entries, days))
}

func (s *AyurDietServer) handleGenerateDietChart(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params GenerateDietChartParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if err := required("patient_id", params.PatientID); err != nil {
		return nil, err
	}
	if params.Duration < 0 {
		return nil, fmt.Errorf("%w: duration cannot be negative", errInvalidParams)
	}

	p, err := s.storage.GetPatient(ctx, params.PatientID)
	if err != nil {
		return nil, err
	}

	chart := s.charts.Generate(ctx, dietchart.Request{
		Patient:      *p,
		Preferences:  params.Preferences,
		Restrictions: params.Restrictions,
		Goals:        params.Goals,
		Duration:     params.Duration,
	})

	if err := s.storage.SaveDietChart(ctx, chart); err != nil {
		return nil, fmt.Errorf("failed to save diet chart: %w", err)
	}

	return s.createJSONResponse(chart)
}

func (s *AyurDietServer) handleGetDietCharts(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params GetDietChartsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if err := required("patient_id", params.PatientID); err != nil {
		return nil, err
	}

	charts, err := s.storage.ListDietCharts(ctx, params.PatientID, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve diet charts: %w", err)
	}

	return s.createJSONResponse(charts)
}
