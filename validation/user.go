package validation

import (
	"strings"

	"github.com/akinalp/antren/models"
)

// updateUserFields — PUT /admin/users/{id} gövdesinde izin verilen alanlar.
// Şema strict'tir: bunların dışında alan gelirse istek reddedilir.
var updateUserFields = map[string]bool{
	"name":     true,
	"surname":  true,
	"nickName": true,
	"age":      true,
	"role":     true,
}

// ParseUpdateUserBody, admin'in kısmi kullanıcı güncellemesini doğrular.
// Her alan opsiyoneldir; verilen alan kurallara uymalıdır. age için
// "istekte yok" ile "null geldi" ayrımı AgeSet ile taşınır.
func ParseUpdateUserBody(body []byte) (*models.UserUpdate, []string) {
	fields, issues := parseObject(body)
	if issues != nil {
		return nil, issues
	}

	for key := range fields {
		if !updateUserFields[key] {
			issues = append(issues, "validation.common.unknownField")
			break
		}
	}

	update := &models.UserUpdate{}

	// Register'ın aksine bu şemada string alanlar trim edilir: sadece
	// boşluktan oluşan değer reddedilir, kabul edilen değer kırpılmış
	// haliyle saklanır.
	if raw, present := fields["name"]; present {
		if s, ok := asString(raw); ok && strings.TrimSpace(s) != "" {
			s = strings.TrimSpace(s)
			update.Name = &s
		} else {
			issues = append(issues, "validation.common.nameRequired")
		}
	}

	if raw, present := fields["surname"]; present {
		if s, ok := asString(raw); ok && strings.TrimSpace(s) != "" {
			s = strings.TrimSpace(s)
			update.Surname = &s
		} else {
			issues = append(issues, "validation.common.surnameRequired")
		}
	}

	if raw, present := fields["nickName"]; present {
		if s, ok := asString(raw); ok && strings.TrimSpace(s) != "" {
			s = strings.TrimSpace(s)
			update.NickName = &s
		} else {
			issues = append(issues, "validation.common.nicknameRequired")
		}
	}

	if raw, present := fields["role"]; present {
		if s, ok := asString(raw); ok && models.Role(s).Valid() {
			role := models.Role(s)
			update.Role = &role
		} else {
			issues = append(issues, "validation.common.invalidRole")
		}
	}

	if hasField(fields, "age") {
		age, ageIssues := parseAge(fields["age"], true)
		issues = append(issues, ageIssues...)
		update.Age = age
		update.AgeSet = len(ageIssues) == 0
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return update, nil
}

// trackFields — POST /users/track/{exerciseId} gövdesinde izin verilen alanlar.
var trackFields = map[string]bool{
	"duration": true,
}

// ParseTrackBody, egzersiz tamamlama gövdesini doğrular.
// duration zorunludur, sayıya coerce edilir ve pozitif olmalıdır.
func ParseTrackBody(body []byte) (*models.TrackInput, []string) {
	fields, issues := parseObject(body)
	if issues != nil {
		return nil, issues
	}

	for key := range fields {
		if !trackFields[key] {
			issues = append(issues, "validation.common.unknownField")
			break
		}
	}

	input := &models.TrackInput{}

	if f, ok := coerceNumber(fields["duration"]); ok && f > 0 {
		input.Duration = int64(f)
	} else {
		issues = append(issues, "validation.common.invalidDuration")
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return input, nil
}
