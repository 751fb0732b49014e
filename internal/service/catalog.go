package service

import "github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"

// The static catalog of survey entry points shown on the selection screen.
var surveyTypeCatalog = []entity.SurveyTypeDescriptor{
	{
		ID:          entity.SurveyTypeExisting,
		Title:       "Survei APJ Eksisting",
		Icon:        "lamp",
		Description: "Pendataan titik lampu penerangan jalan yang sudah terpasang",
		Route:       "/dashboard/survey/existing",
	},
	{
		ID:          entity.SurveyTypePropose,
		Title:       "Survei APJ Usulan",
		Icon:        "map-pin",
		Description: "Pendataan titik usulan pemasangan lampu penerangan jalan baru",
		Route:       "/dashboard/survey/propose",
	},
}

// AllowedSurveyTypes maps the active-task type to the survey types a field
// user may submit. Absent or unrecognized task types allow everything.
func AllowedSurveyTypes(task entity.TaskType) []entity.SurveyType {
	switch task {
	case entity.TaskProposeExisting:
		return []entity.SurveyType{entity.SurveyTypeExisting, entity.SurveyTypePropose}
	case entity.TaskPropose:
		return []entity.SurveyType{entity.SurveyTypePropose}
	case entity.TaskExisting:
		return []entity.SurveyType{entity.SurveyTypeExisting}
	default:
		return []entity.SurveyType{entity.SurveyTypeExisting, entity.SurveyTypePropose}
	}
}

// SurveyTypeOptions filters the catalog down to the entries the task allows.
func (s *Service) SurveyTypeOptions(task entity.TaskType) []entity.SurveyTypeDescriptor {
	allowed := AllowedSurveyTypes(task)

	allowedSet := make(map[entity.SurveyType]struct{}, len(allowed))
	for _, t := range allowed {
		allowedSet[t] = struct{}{}
	}

	options := make([]entity.SurveyTypeDescriptor, 0, len(surveyTypeCatalog))

	for _, d := range surveyTypeCatalog {
		if _, ok := allowedSet[d.ID]; ok {
			options = append(options, d)
		}
	}

	return options
}
