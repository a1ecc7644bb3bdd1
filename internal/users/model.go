package users

import "time"

// User is an authenticated account plus its optional style profile.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	PictureURL string    `json:"pictureUrl"`
	Profile    Profile   `json:"profile"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Profile holds the style attributes that feed recommendations.
type Profile struct {
	Gender    string `json:"gender,omitempty"`
	AgeRange  string `json:"ageRange,omitempty"`
	SkinTone  string `json:"skinTone,omitempty"`
	FaceShape string `json:"faceShape,omitempty"`
	BodyType  string `json:"bodyType,omitempty"`
}

// ProfileUpdate is the PUT /users/me body. Nil fields are left unchanged.
type ProfileUpdate struct {
	FullName  *string `json:"fullName" binding:"omitempty,max=120"`
	Gender    *string `json:"gender" binding:"omitempty,oneof=male female other"`
	AgeRange  *string `json:"ageRange" binding:"omitempty,oneof=18-24 25-34 35-44 45-54 55+"`
	SkinTone  *string `json:"skinTone" binding:"omitempty,max=32"`
	FaceShape *string `json:"faceShape" binding:"omitempty,oneof=oval round square heart oblong diamond triangle"`
	BodyType  *string `json:"bodyType" binding:"omitempty,oneof=ectomorph mesomorph endomorph"`
}

// Apply copies the set fields of u onto user.
func (u ProfileUpdate) Apply(user User) User {
	if u.FullName != nil {
		user.FullName = *u.FullName
	}
	if u.Gender != nil {
		user.Profile.Gender = *u.Gender
	}
	if u.AgeRange != nil {
		user.Profile.AgeRange = *u.AgeRange
	}
	if u.SkinTone != nil {
		user.Profile.SkinTone = *u.SkinTone
	}
	if u.FaceShape != nil {
		user.Profile.FaceShape = *u.FaceShape
	}
	if u.BodyType != nil {
		user.Profile.BodyType = *u.BodyType
	}
	return user
}
