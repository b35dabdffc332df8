// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// JSON tag'leri API response'larında kullanılır ve orijinal API sözleşmesine
// uyar (camelCase alan adları). PasswordHash `json:"-"` ile işaretlidir —
// hiçbir response'a dahil edilmez.
package models

import (
	"strconv"
	"time"
)

// Role, kullanıcı rolünü temsil eder.
// Rol kontrolü hiyerarşik DEĞİLDİR: ADMIN, USER rolü gerektiren bir
// route'a giremez. Her route tek bir rolü tam eşleşmeyle ister.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid, rolün tanımlı enum değerlerinden biri olup olmadığını kontrol eder.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User, bir kullanıcı hesabını temsil eder.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	NickName     string    `json:"nickName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Age          *int64    `json:"age"` // nullable — nil ise JSON'da null
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SanitizedUser, auth response'larında dönen kullanıcı temsili.
// Şifre yoktur, id string'e çevrilir, eksik age null olarak normalize edilir.
type SanitizedUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	NickName  string    `json:"nickName"`
	Email     string    `json:"email"`
	Age       *int64    `json:"age"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitize, User'dan auth response'larında kullanılan temsili üretir.
func (u *User) Sanitize() *SanitizedUser {
	return &SanitizedUser{
		ID:        strconv.FormatInt(u.ID, 10),
		Name:      u.Name,
		Surname:   u.Surname,
		NickName:  u.NickName,
		Email:     u.Email,
		Age:       u.Age,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserBasic, GET /users/all listesinde dönen kısıtlı temsil.
type UserBasic struct {
	ID       int64  `json:"id"`
	NickName string `json:"nickName"`
}

// UserProfile, kullanıcının kendi profil görünümü.
type UserProfile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	NickName string `json:"nickName"`
	Age      *int64 `json:"age"`
}

// Principal, doğrulanmış kimliktir — auth middleware token'ı doğruladıktan
// ve kullanıcıyı DB'den yeniden okuduktan sonra context'e koyar.
// Handler'lar kimliği ASLA request input'undan almaz, buradan alır.
type Principal struct {
	UserID int64
	Role   Role
}

// UserUpdate, admin'in kısmi kullanıcı güncellemesi (PUT /admin/users/:id).
// nil pointer = alan istekte yok, dokunma. Age için ayrıca AgeSet taşınır:
// istekte `"age": null` gelmesi ile alanın hiç gelmemesi farklı şeylerdir
// (null → kolonu temizle, yok → dokunma).
type UserUpdate struct {
	Name     *string
	Surname  *string
	NickName *string
	Age      *int64
	AgeSet   bool
	Role     *Role
}

// LoginInput, giriş isteğinin doğrulanmış hali.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput, kayıt isteğinin doğrulanmış hali.
type RegisterInput struct {
	Name     string
	Surname  string
	NickName string
	Email    string
	Password string
	Role     Role // boş ise service USER varsayar
	Age      *int64
}
