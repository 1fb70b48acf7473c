package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Event status constants
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Team member type constants
const (
	TeamFaculty = "faculty"
	TeamStudent = "student"
)

// Base holds the columns every record shares
type Base struct {
	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
}

var _ bun.BeforeAppendModelHook = (*Base)(nil)

// BeforeAppendModel stamps CreatedAt on insert
func (b *Base) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok && b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (b Base) RecordID() int64 { return b.ID }

// Domain types

type User struct {
	bun.BaseModel `bun:"table:users"`
	Base

	Username string `bun:"username,notnull,unique" json:"username"`
	Password string `bun:"password,notnull" json:"-"`
	IsAdmin  bool   `bun:"is_admin,notnull,default:false" json:"isAdmin"`
}

// Leaderboard holds the podium of a completed event
type Leaderboard struct {
	First  string `json:"first,omitempty"`
	Second string `json:"second,omitempty"`
	Third  string `json:"third,omitempty"`
}

type Event struct {
	bun.BaseModel `bun:"table:events"`
	Base

	Title       string       `bun:"title,notnull" json:"title"`
	Date        string       `bun:"date,notnull" json:"date"`
	Time        string       `bun:"time,notnull" json:"time"`
	Location    string       `bun:"location,notnull" json:"location"`
	Category    string       `bun:"category,notnull" json:"category"`
	Description string       `bun:"description,notnull" json:"description"`
	Image       *string      `bun:"image" json:"image"`
	Status      string       `bun:"status,notnull" json:"status"`
	Leaderboard *Leaderboard `bun:"leaderboard,type:jsonb" json:"leaderboard"`
}

type TeamLinks struct {
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type TeamMember struct {
	bun.BaseModel `bun:"table:team_members"`
	Base

	Name     string     `bun:"name,notnull" json:"name"`
	Position string     `bun:"position,notnull" json:"position"`
	Bio      *string    `bun:"bio" json:"bio"`
	Image    *string    `bun:"image" json:"image"`
	Type     string     `bun:"type,notnull" json:"type"`
	Links    *TeamLinks `bun:"links,type:jsonb" json:"links"`
}

type InnovatorLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Innovator is a student showcased on the site.
// At most one innovator has Featured set at any time.
type Innovator struct {
	bun.BaseModel `bun:"table:innovators"`
	Base

	Name               string          `bun:"name,notnull" json:"name"`
	Class              string          `bun:"class,notnull" json:"class"`
	ProfileImage       *string         `bun:"profile_image" json:"profileImage"`
	ProjectTitle       string          `bun:"project_title,notnull" json:"projectTitle"`
	ProjectDescription string          `bun:"project_description,notnull" json:"projectDescription"`
	ProjectTags        []string        `bun:"project_tags,type:jsonb,notnull" json:"projectTags"`
	Links              *InnovatorLinks `bun:"links,type:jsonb" json:"links"`
	Featured           bool            `bun:"featured,notnull,default:false" json:"featured"`
	Month              *string         `bun:"month" json:"month"`
	Year               *int            `bun:"year" json:"year"`
}

type NoticeLink struct {
	URL  string `json:"url" validate:"required,url"`
	Text string `json:"text" validate:"required"`
}

type Notice struct {
	bun.BaseModel `bun:"table:notices"`
	Base

	Title   string      `bun:"title,notnull" json:"title"`
	Content string      `bun:"content,notnull" json:"content"`
	Date    string      `bun:"date,notnull" json:"date"`
	Link    *NoticeLink `bun:"link,type:jsonb" json:"link"`
}

// About is the single row describing the club
type About struct {
	bun.BaseModel `bun:"table:about"`
	Base

	Description string `bun:"description,notnull" json:"description"`
	Vision      string `bun:"vision,notnull" json:"vision"`
	Mission     string `bun:"mission,notnull" json:"mission"`
}

type AboutFeature struct {
	bun.BaseModel `bun:"table:about_features"`
	Base

	Title       string `bun:"title,notnull" json:"title"`
	Description string `bun:"description,notnull" json:"description"`
	Icon        string `bun:"icon,notnull" json:"icon"`
}

type Social struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// Contact is the single row of public contact details
type Contact struct {
	bun.BaseModel `bun:"table:contact"`
	Base

	Email   string `bun:"email,notnull" json:"email"`
	Phone   string `bun:"phone,notnull" json:"phone"`
	Address string `bun:"address,notnull" json:"address"`
	Hours   string `bun:"hours,notnull" json:"hours"`
	Weekend string `bun:"weekend,notnull" json:"weekend"`
	Social  Social `bun:"social,type:jsonb,notnull" json:"social"`
}

type ContactMessage struct {
	bun.BaseModel `bun:"table:contact_messages"`
	Base

	Name    string `bun:"name,notnull" json:"name"`
	Email   string `bun:"email,notnull" json:"email"`
	Subject string `bun:"subject,notnull" json:"subject"`
	Message string `bun:"message,notnull" json:"message"`
	Read    bool   `bun:"read,notnull,default:false" json:"read"`
}

// Settings is the single row of site-wide display settings
type Settings struct {
	bun.BaseModel `bun:"table:settings"`
	Base

	SiteTitle  string  `bun:"site_title,notnull" json:"siteTitle"`
	BgImageURL *string `bun:"bg_image_url" json:"bgImageUrl"`
	FooterText *string `bun:"footer_text" json:"footerText"`
}

type ContentArticle struct {
	bun.BaseModel `bun:"table:content_articles"`
	Base

	Title       string  `bun:"title,notnull" json:"title"`
	Content     string  `bun:"content,notnull" json:"content"`
	Image       *string `bun:"image" json:"image"`
	Category    string  `bun:"category,notnull" json:"category"`
	Featured    bool    `bun:"featured,notnull,default:false" json:"featured"`
	PublishDate string  `bun:"publish_date,notnull" json:"publishDate"`
}
