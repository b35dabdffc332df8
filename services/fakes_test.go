package services

// Test fake'leri: repository interface'lerinin bellek içi implementasyonları.
// Servis testleri DB'ye dokunmaz — SQL davranışı repository testlerinde
// gerçek SQLite ile ayrıca doğrulanır.

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
)

// ─── fakeUserRepo ───

type fakeUserRepo struct {
	users  []*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("%w: email already in use", pkg.ErrAlreadyExists)
		}
		if u.NickName == user.NickName {
			return fmt.Errorf("%w: nickname already taken", pkg.ErrAlreadyExists)
		}
	}

	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (f *fakeUserRepo) GetByEmailOrNick(_ context.Context, email, nickName string) (*models.User, error) {
	// Email eşleşmesi öncelikli — SQLite implementasyonuyla aynı sözleşme.
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	for _, u := range f.users {
		if u.NickName == nickName {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, pkg.ErrNotFound
	}
	for _, u := range f.users {
		if u.ID == n {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (f *fakeUserRepo) GetPrincipal(ctx context.Context, id string) (*models.Principal, error) {
	u, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.Principal{UserID: u.ID, Role: u.Role}, nil
}

func (f *fakeUserRepo) GetAllBasic(_ context.Context) ([]models.UserBasic, error) {
	list := []models.UserBasic{}
	for _, u := range f.users {
		list = append(list, models.UserBasic{ID: u.ID, NickName: u.NickName})
	}
	return list, nil
}

func (f *fakeUserRepo) GetProfile(_ context.Context, userID int64) (*models.UserProfile, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return &models.UserProfile{
				ID: u.ID, Name: u.Name, Surname: u.Surname, NickName: u.NickName, Age: u.Age,
			}, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	list := []models.User{}
	for _, u := range f.users {
		list = append(list, *u)
	}
	return list, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, update *models.UserUpdate) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return pkg.ErrNotFound
	}
	for _, u := range f.users {
		if u.ID != n {
			continue
		}
		if update.Name != nil {
			u.Name = *update.Name
		}
		if update.Surname != nil {
			u.Surname = *update.Surname
		}
		if update.NickName != nil {
			u.NickName = *update.NickName
		}
		if update.AgeSet {
			u.Age = update.Age
		}
		if update.Role != nil {
			u.Role = *update.Role
		}
		u.UpdatedAt = time.Now()
		return nil
	}
	return pkg.ErrNotFound
}

// ─── fakeExerciseRepo ───

type fakeExerciseRepo struct {
	exercises []*models.Exercise
	deleted   map[int64]bool
	nextID    int64
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{deleted: map[int64]bool{}, nextID: 1}
}

func (f *fakeExerciseRepo) Create(_ context.Context, input *models.ExerciseUpsert) (*models.Exercise, error) {
	programID := input.ProgramID
	ex := &models.Exercise{
		ID:         f.nextID,
		Name:       input.Name,
		Difficulty: input.Difficulty,
		ProgramID:  &programID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	f.nextID++
	f.exercises = append(f.exercises, ex)

	cp := *ex
	return &cp, nil
}

func (f *fakeExerciseRepo) find(id string) *models.Exercise {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil
	}
	for _, ex := range f.exercises {
		if ex.ID == n && !f.deleted[ex.ID] {
			return ex
		}
	}
	return nil
}

func (f *fakeExerciseRepo) GetByID(_ context.Context, id string) (*models.Exercise, error) {
	ex := f.find(id)
	if ex == nil {
		return nil, pkg.ErrNotFound
	}
	cp := *ex
	return &cp, nil
}

func (f *fakeExerciseRepo) GetRestricted(_ context.Context, id string) (*models.ExerciseRestricted, error) {
	ex := f.find(id)
	if ex == nil {
		return nil, pkg.ErrNotFound
	}
	return &models.ExerciseRestricted{
		ID: ex.ID, Name: ex.Name, Difficulty: ex.Difficulty, ProgramID: ex.ProgramID,
	}, nil
}

func (f *fakeExerciseRepo) Update(_ context.Context, id string, input *models.ExerciseUpsert) error {
	ex := f.find(id)
	if ex == nil {
		return pkg.ErrNotFound
	}
	programID := input.ProgramID
	ex.Name = input.Name
	ex.Difficulty = input.Difficulty
	ex.ProgramID = &programID
	ex.UpdatedAt = time.Now()
	return nil
}

func (f *fakeExerciseRepo) SoftDelete(_ context.Context, id string) error {
	ex := f.find(id)
	if ex == nil {
		return pkg.ErrNotFound
	}
	f.deleted[ex.ID] = true
	return nil
}

func (f *fakeExerciseRepo) List(_ context.Context, q *models.ListExercisesQuery) ([]models.Exercise, int, error) {
	matched := []models.Exercise{}
	for _, ex := range f.exercises {
		if f.deleted[ex.ID] {
			continue
		}
		if q.ProgramID != nil && (ex.ProgramID == nil || *ex.ProgramID != *q.ProgramID) {
			continue
		}
		matched = append(matched, *ex)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *fakeExerciseRepo) SetProgram(_ context.Context, exerciseID string, programID *string) error {
	ex := f.find(exerciseID)
	if ex == nil {
		return pkg.ErrNotFound
	}
	if programID == nil {
		ex.ProgramID = nil
		return nil
	}
	n, err := strconv.ParseInt(*programID, 10, 64)
	if err != nil {
		return pkg.ErrNotFound
	}
	ex.ProgramID = &n
	return nil
}

// ─── fakeProgramRepo ───

type fakeProgramRepo struct {
	programs []models.Program
}

func newFakeProgramRepo(names ...string) *fakeProgramRepo {
	f := &fakeProgramRepo{}
	for i, name := range names {
		f.programs = append(f.programs, models.Program{ID: int64(i + 1), Name: name})
	}
	return f
}

func (f *fakeProgramRepo) GetAll(_ context.Context) ([]models.Program, error) {
	return append([]models.Program{}, f.programs...), nil
}

func (f *fakeProgramRepo) GetByID(_ context.Context, id string) (*models.Program, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, pkg.ErrNotFound
	}
	for _, p := range f.programs {
		if p.ID == n {
			cp := p
			return &cp, nil
		}
	}
	return nil, pkg.ErrNotFound
}

// ─── fakeCompletedRepo ───

type fakeCompletedRepo struct {
	records []*models.CompletedExercise
	deleted map[int64]bool
	nextID  int64
}

func newFakeCompletedRepo() *fakeCompletedRepo {
	return &fakeCompletedRepo{deleted: map[int64]bool{}, nextID: 1}
}

func (f *fakeCompletedRepo) Create(_ context.Context, userID int64, exerciseID string, duration int64, completedAt time.Time) (*models.CompletedExercise, error) {
	exID, err := strconv.ParseInt(exerciseID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad exercise id: %w", err)
	}

	ce := &models.CompletedExercise{
		ID:          f.nextID,
		UserID:      userID,
		ExerciseID:  exID,
		Duration:    duration,
		CompletedAt: completedAt,
	}
	f.nextID++
	f.records = append(f.records, ce)

	cp := *ce
	return &cp, nil
}

func (f *fakeCompletedRepo) ListByUser(_ context.Context, userID int64) ([]models.CompletedExercise, error) {
	list := []models.CompletedExercise{}
	for _, ce := range f.records {
		if ce.UserID == userID && !f.deleted[ce.ID] {
			list = append(list, *ce)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CompletedAt.After(list[j].CompletedAt) })
	return list, nil
}

func (f *fakeCompletedRepo) SoftDeleteByIDAndUser(_ context.Context, id string, userID int64) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return pkg.ErrNotFound
	}
	for _, ce := range f.records {
		if ce.ID == n && ce.UserID == userID && !f.deleted[ce.ID] {
			f.deleted[ce.ID] = true
			return nil
		}
	}
	return pkg.ErrNotFound
}
