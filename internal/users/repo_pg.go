package users

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, full_name, picture_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  full_name = COALESCE(users.full_name, EXCLUDED.full_name),
  picture_url = EXCLUDED.picture_url,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		nullableString(user.FullName),
		nullableString(user.PictureURL),
	)
	return err
}

const selectUserColumns = `id, email, full_name, picture_url, gender, age_range, skin_tone, face_shape, body_type, created_at, updated_at`

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1 LIMIT 1`
	return scanUser(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) UpdateProfile(ctx context.Context, user User) (User, error) {
	query := `
UPDATE users SET
  full_name = $2,
  gender = $3,
  age_range = $4,
  skin_tone = $5,
  face_shape = $6,
  body_type = $7,
  updated_at = now()
WHERE id = $1
RETURNING ` + selectUserColumns
	return scanUser(r.DB.QueryRowContext(ctx, query,
		user.ID,
		nullableString(user.FullName),
		nullableString(user.Profile.Gender),
		nullableString(user.Profile.AgeRange),
		nullableString(user.Profile.SkinTone),
		nullableString(user.Profile.FaceShape),
		nullableString(user.Profile.BodyType),
	))
}

func scanUser(row *sql.Row) (User, error) {
	var user User
	var fullName, pictureURL, gender, ageRange, skinTone, faceShape, bodyType sql.NullString
	err := row.Scan(
		&user.ID,
		&user.Email,
		&fullName,
		&pictureURL,
		&gender,
		&ageRange,
		&skinTone,
		&faceShape,
		&bodyType,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.FullName = fullName.String
	user.PictureURL = pictureURL.String
	user.Profile = Profile{
		Gender:    gender.String,
		AgeRange:  ageRange.String,
		SkinTone:  skinTone.String,
		FaceShape: faceShape.String,
		BodyType:  bodyType.String,
	}
	return user, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
