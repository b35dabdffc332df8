package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akinalp/antren/database"
	"github.com/akinalp/antren/models"
	"github.com/akinalp/antren/pkg"
)

const userColumns = `id, name, surname, nick_name, email, password_hash, age, role, created_at, updated_at`

// sqliteUserRepo, UserRepository'nin SQLite implementasyonu.
type sqliteUserRepo struct {
	db database.Querier
}

// NewSQLiteUserRepo, constructor. Interface döner — çağıran taraf
// implementasyondan bağımsız kalır.
func NewSQLiteUserRepo(db database.Querier) UserRepository {
	return &sqliteUserRepo{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Surname, &user.NickName, &user.Email,
		&user.PasswordHash, &user.Age, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *sqliteUserRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, surname, nick_name, email, password_hash, age, role)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Name,
		user.Surname,
		user.NickName,
		user.Email,
		user.PasswordHash,
		user.Age,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		// UNIQUE constraint violation → email veya nick zaten kayıtlı.
		// Normal akışta servis önce GetByEmailOrNick ile kontrol eder; bu
		// dal eşzamanlı kayıtlara karşı ikinci savunma hattıdır.
		// SQLite hatayı kolon adıyla raporlar: "UNIQUE constraint failed:
		// users.email" — index adı geçmez.
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "users.email") {
				return fmt.Errorf("%w: email already in use", pkg.ErrAlreadyExists)
			}
			return fmt.Errorf("%w: nickname already taken", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *sqliteUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? AND deleted_at IS NULL`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *sqliteUserRepo) GetByEmailOrNick(ctx context.Context, email, nickName string) (*models.User, error) {
	// İki ayrı kayıt da eşleşebilir; ORDER BY email eşleşmesini öne alır
	// ki çakışma mesajı önce email'i işaret etsin.
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE (email = ? OR nick_name = ?) AND deleted_at IS NULL
		ORDER BY CASE WHEN email = ? THEN 0 ELSE 1 END
		LIMIT 1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email, nickName, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email or nick: %w", err)
	}

	return user, nil
}

func (r *sqliteUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ? AND deleted_at IS NULL`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *sqliteUserRepo) GetPrincipal(ctx context.Context, id string) (*models.Principal, error) {
	query := `SELECT id, role FROM users WHERE id = ? AND deleted_at IS NULL`

	p := &models.Principal{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.UserID, &p.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	return p, nil
}

func (r *sqliteUserRepo) GetAllBasic(ctx context.Context) ([]models.UserBasic, error) {
	query := `SELECT id, nick_name FROM users WHERE deleted_at IS NULL ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	users := []models.UserBasic{}
	for rows.Next() {
		var u models.UserBasic
		if err := rows.Scan(&u.ID, &u.NickName); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (r *sqliteUserRepo) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	query := `
		SELECT id, name, surname, nick_name, age
		FROM users WHERE id = ? AND deleted_at IS NULL`

	p := &models.UserProfile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.Name, &p.Surname, &p.NickName, &p.Age,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (r *sqliteUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Surname, &u.NickName, &u.Email,
			&u.PasswordHash, &u.Age, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (r *sqliteUserRepo) Update(ctx context.Context, id string, update *models.UserUpdate) error {
	// Dinamik SET: sadece istekte gelen alanlar sorguya girer.
	sets := []string{"updated_at = CURRENT_TIMESTAMP"}
	args := []any{}

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Surname != nil {
		sets = append(sets, "surname = ?")
		args = append(args, *update.Surname)
	}
	if update.NickName != nil {
		sets = append(sets, "nick_name = ?")
		args = append(args, *update.NickName)
	}
	if update.AgeSet {
		// age hem set edilebilir hem null'a çekilebilir.
		sets = append(sets, "age = ?")
		args = append(args, update.Age)
	}
	if update.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *update.Role)
	}

	query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = ? AND deleted_at IS NULL`
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "users.email") {
				return fmt.Errorf("%w: email already in use", pkg.ErrAlreadyExists)
			}
			return fmt.Errorf("%w: nickname already taken", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

// isUniqueViolation, SQLite UNIQUE constraint hatasını kontrol eder.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
