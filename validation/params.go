package validation

import (
	"regexp"
	"strings"
)

// numericIDRe — path id'leri yalnızca rakamlardan oluşan string'lerdir.
// Sayıya çevrilmeden ham string olarak store katmanına iletilirler;
// SQLite'ın tip affinity'si karşılaştırmayı doğru yapar.
var numericIDRe = regexp.MustCompile(`^\d+$`)

// ParseIDParam, genel {id} path parametresini doğrular.
func ParseIDParam(raw string) (string, []string) {
	id := strings.TrimSpace(raw)
	if !numericIDRe.MatchString(id) {
		return "", []string{"validation.common.invalidIdFormat"}
	}
	return id, nil
}

// ParseExerciseIDParam, {exerciseId} path parametresini doğrular.
func ParseExerciseIDParam(raw string) (string, []string) {
	id := strings.TrimSpace(raw)
	if !numericIDRe.MatchString(id) {
		return "", []string{"validation.common.exerciseIdNumericString"}
	}
	return id, nil
}

// ParseCompletedIDParam, {completedExerciseId} path parametresini doğrular.
func ParseCompletedIDParam(raw string) (string, []string) {
	id := strings.TrimSpace(raw)
	if !numericIDRe.MatchString(id) {
		return "", []string{"validation.common.completedExerciseIdInvalid"}
	}
	return id, nil
}

// ParseProgramExerciseParams, {programId} ve {exerciseId} çiftini doğrular.
// İki parametre de hatalıysa iki issue birden döner.
func ParseProgramExerciseParams(rawProgramID, rawExerciseID string) (programID, exerciseID string, issues []string) {
	programID = strings.TrimSpace(rawProgramID)
	if !numericIDRe.MatchString(programID) {
		issues = append(issues, "validation.common.programIdNumericString")
		programID = ""
	}

	exerciseID = strings.TrimSpace(rawExerciseID)
	if !numericIDRe.MatchString(exerciseID) {
		issues = append(issues, "validation.common.exerciseIdNumericString")
		exerciseID = ""
	}

	return programID, exerciseID, issues
}
