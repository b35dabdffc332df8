package validation

import (
	"regexp"

	"github.com/akinalp/antren/models"
)

// emailRe — pragmatik email kontrolü: boşluksuz local@domain.tld.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ParseRegisterBody, kayıt gövdesini doğrular.
// String alanlar bilinçli olarak trim edilmez: " " geçerli bir isimdir,
// minimum uzunluk ham değer üzerinden sayılır.
func ParseRegisterBody(body []byte) (*models.RegisterInput, []string) {
	fields, issues := parseObject(body)
	if issues != nil {
		return nil, issues
	}

	input := &models.RegisterInput{}

	if s, ok := asString(fields["name"]); !ok || len(s) == 0 {
		issues = append(issues, "validation.common.nameRequired")
	} else {
		input.Name = s
	}

	if s, ok := asString(fields["surname"]); !ok || len(s) == 0 {
		issues = append(issues, "validation.common.surnameRequired")
	} else {
		input.Surname = s
	}

	if s, ok := asString(fields["nickName"]); !ok || len(s) == 0 {
		issues = append(issues, "validation.common.nicknameRequired")
	} else {
		input.NickName = s
	}

	if s, ok := asString(fields["email"]); !ok || len(s) == 0 {
		issues = append(issues, "validation.common.emailRequired")
	} else if !emailRe.MatchString(s) {
		issues = append(issues, "validation.common.invalidEmailFormat")
	} else {
		input.Email = s
	}

	if s, ok := asString(fields["password"]); !ok || len(s) == 0 {
		issues = append(issues, "validation.common.passwordRequired")
	} else if len([]rune(s)) < 6 {
		issues = append(issues, "validation.common.passwordMin")
	} else {
		input.Password = s
	}

	// role opsiyoneldir; verilmişse enum'dan biri olmalı. Boş bırakılırsa
	// servis katmanı USER varsayar.
	if raw, present := fields["role"]; present && !isNull(raw) {
		if s, ok := asString(raw); ok && models.Role(s).Valid() {
			input.Role = models.Role(s)
		} else {
			issues = append(issues, "validation.common.invalidRole")
		}
	}

	age, ageIssues := parseAge(fields["age"], hasField(fields, "age"))
	issues = append(issues, ageIssues...)
	input.Age = age

	if len(issues) > 0 {
		return nil, issues
	}
	return input, nil
}

// ParseLoginBody, giriş gövdesini doğrular.
func ParseLoginBody(body []byte) (*models.LoginInput, []string) {
	fields, issues := parseObject(body)
	if issues != nil {
		return nil, issues
	}

	input := &models.LoginInput{}

	if s, ok := asString(fields["email"]); !ok || len(s) == 0 {
		issues = append(issues, "validation.common.emailRequired")
	} else if !emailRe.MatchString(s) {
		issues = append(issues, "validation.common.invalidEmailFormat")
	} else {
		input.Email = s
	}

	if s, ok := asString(fields["password"]); !ok || len(s) == 0 {
		issues = append(issues, "validation.common.passwordRequired")
	} else {
		input.Password = s
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return input, nil
}
