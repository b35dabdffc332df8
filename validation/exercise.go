package validation

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/akinalp/antren/models"
)

// ParseExerciseBody, egzersiz create/update gövdesini doğrular.
// İsim trim edilir (register'ın aksine — orijinal sözleşme böyle),
// programID zorunludur ve pozitif bir sayıya coerce edilir.
func ParseExerciseBody(body []byte) (*models.ExerciseUpsert, []string) {
	fields, issues := parseObject(body)
	if issues != nil {
		return nil, issues
	}

	input := &models.ExerciseUpsert{}

	if s, ok := asString(fields["name"]); ok {
		s = strings.TrimSpace(s)
		switch {
		case len(s) == 0:
			issues = append(issues, "validation.common.exerciseNameRequired")
		case len([]rune(s)) > 200:
			issues = append(issues, "validation.common.exerciseNameTooLong")
		default:
			input.Name = s
		}
	} else {
		issues = append(issues, "validation.common.exerciseNameRequired")
	}

	if raw, present := fields["difficulty"]; !present || isNull(raw) {
		issues = append(issues, "validation.common.difficultyRequired")
	} else if s, ok := asString(raw); ok && models.Difficulty(s).Valid() {
		input.Difficulty = models.Difficulty(s)
	} else {
		issues = append(issues, "validation.common.invalidDifficulty")
	}

	if f, ok := coerceNumber(fields["programID"]); ok && f > 0 {
		input.ProgramID = int64(f)
	} else {
		issues = append(issues, "validation.common.programIdPositive")
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return input, nil
}

// ParseListExercisesQuery, GET /exercises query string'ini doğrular.
//
// page ve limit verilmezse 1 ve 10 varsayılır; verilmişse pozitif tam sayı
// olmalıdır. programID sayısal olmalıdır; 0 değeri "filtre yok" anlamına
// gelir (orijinal API 0'ı falsy sayar). search olduğu gibi geçer.
func ParseListExercisesQuery(query url.Values) (*models.ListExercisesQuery, []string) {
	var issues []string

	q := &models.ListExercisesQuery{Page: 1, Limit: 10}

	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			issues = append(issues, "validation.common.invalidPageNumber")
		} else {
			q.Page = n
		}
	}

	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			issues = append(issues, "validation.common.invalidLimitNumber")
		} else {
			q.Limit = n
		}
	}

	if raw := query.Get("programID"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			issues = append(issues, "validation.common.invalidProgramId")
		} else if n != 0 {
			q.ProgramID = &n
		}
	}

	q.Search = query.Get("search")

	if len(issues) > 0 {
		return nil, issues
	}
	return q, nil
}
