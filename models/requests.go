// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types
//
// Create* requests carry the full schema of a record and Build it.
// Update* requests use pointer fields; Apply only touches the fields that
// were present in the JSON body.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,maxbytes=72"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Events

type CreateEventRequest struct {
	Title       string       `json:"title" validate:"required"`
	Date        string       `json:"date" validate:"required"`
	Time        string       `json:"time" validate:"required"`
	Location    string       `json:"location" validate:"required"`
	Category    string       `json:"category" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Image       *string      `json:"image"`
	Status      string       `json:"status" validate:"required,oneof=upcoming ongoing completed"`
	Leaderboard *Leaderboard `json:"leaderboard"`
}

func (r CreateEventRequest) Build() *Event {
	return &Event{
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		Location:    r.Location,
		Category:    r.Category,
		Description: r.Description,
		Image:       r.Image,
		Status:      r.Status,
		Leaderboard: r.Leaderboard,
	}
}

type UpdateEventRequest struct {
	Title       *string      `json:"title" validate:"omitempty,min=1"`
	Date        *string      `json:"date" validate:"omitempty,min=1"`
	Time        *string      `json:"time" validate:"omitempty,min=1"`
	Location    *string      `json:"location" validate:"omitempty,min=1"`
	Category    *string      `json:"category" validate:"omitempty,min=1"`
	Description *string      `json:"description" validate:"omitempty,min=1"`
	Image       *string      `json:"image"`
	Status      *string      `json:"status" validate:"omitempty,oneof=upcoming ongoing completed"`
	Leaderboard *Leaderboard `json:"leaderboard"`
}

func (r UpdateEventRequest) Apply(e *Event) {
	setString(&e.Title, r.Title)
	setString(&e.Date, r.Date)
	setString(&e.Time, r.Time)
	setString(&e.Location, r.Location)
	setString(&e.Category, r.Category)
	setString(&e.Description, r.Description)
	setString(&e.Status, r.Status)
	if r.Image != nil {
		e.Image = r.Image
	}
	if r.Leaderboard != nil {
		e.Leaderboard = r.Leaderboard
	}
}

// Team

type CreateTeamMemberRequest struct {
	Name     string     `json:"name" validate:"required"`
	Position string     `json:"position" validate:"required"`
	Bio      *string    `json:"bio"`
	Image    *string    `json:"image"`
	Type     string     `json:"type" validate:"required,oneof=faculty student"`
	Links    *TeamLinks `json:"links"`
}

func (r CreateTeamMemberRequest) Build() *TeamMember {
	return &TeamMember{
		Name:     r.Name,
		Position: r.Position,
		Bio:      r.Bio,
		Image:    r.Image,
		Type:     r.Type,
		Links:    r.Links,
	}
}

type UpdateTeamMemberRequest struct {
	Name     *string    `json:"name" validate:"omitempty,min=1"`
	Position *string    `json:"position" validate:"omitempty,min=1"`
	Bio      *string    `json:"bio"`
	Image    *string    `json:"image"`
	Type     *string    `json:"type" validate:"omitempty,oneof=faculty student"`
	Links    *TeamLinks `json:"links"`
}

func (r UpdateTeamMemberRequest) Apply(m *TeamMember) {
	setString(&m.Name, r.Name)
	setString(&m.Position, r.Position)
	setString(&m.Type, r.Type)
	if r.Bio != nil {
		m.Bio = r.Bio
	}
	if r.Image != nil {
		m.Image = r.Image
	}
	if r.Links != nil {
		m.Links = r.Links
	}
}

// Innovators

type CreateInnovatorRequest struct {
	Name               string          `json:"name" validate:"required"`
	Class              string          `json:"class" validate:"required"`
	ProfileImage       *string         `json:"profileImage"`
	ProjectTitle       string          `json:"projectTitle" validate:"required"`
	ProjectDescription string          `json:"projectDescription" validate:"required"`
	ProjectTags        []string        `json:"projectTags" validate:"required"`
	Links              *InnovatorLinks `json:"links"`
	Featured           bool            `json:"featured"`
	Month              *string         `json:"month"`
	Year               *int            `json:"year"`
}

func (r CreateInnovatorRequest) Build() *Innovator {
	return &Innovator{
		Name:               r.Name,
		Class:              r.Class,
		ProfileImage:       r.ProfileImage,
		ProjectTitle:       r.ProjectTitle,
		ProjectDescription: r.ProjectDescription,
		ProjectTags:        r.ProjectTags,
		Links:              r.Links,
		Featured:           r.Featured,
		Month:              r.Month,
		Year:               r.Year,
	}
}

type UpdateInnovatorRequest struct {
	Name               *string         `json:"name" validate:"omitempty,min=1"`
	Class              *string         `json:"class" validate:"omitempty,min=1"`
	ProfileImage       *string         `json:"profileImage"`
	ProjectTitle       *string         `json:"projectTitle" validate:"omitempty,min=1"`
	ProjectDescription *string         `json:"projectDescription" validate:"omitempty,min=1"`
	ProjectTags        []string        `json:"projectTags"`
	Links              *InnovatorLinks `json:"links"`
	Featured           *bool           `json:"featured"`
	Month              *string         `json:"month"`
	Year               *int            `json:"year"`
}

func (r UpdateInnovatorRequest) Apply(i *Innovator) {
	setString(&i.Name, r.Name)
	setString(&i.Class, r.Class)
	setString(&i.ProjectTitle, r.ProjectTitle)
	setString(&i.ProjectDescription, r.ProjectDescription)
	if r.ProfileImage != nil {
		i.ProfileImage = r.ProfileImage
	}
	if r.ProjectTags != nil {
		i.ProjectTags = r.ProjectTags
	}
	if r.Links != nil {
		i.Links = r.Links
	}
	if r.Featured != nil {
		i.Featured = *r.Featured
	}
	if r.Month != nil {
		i.Month = r.Month
	}
	if r.Year != nil {
		i.Year = r.Year
	}
}

// Notices

type CreateNoticeRequest struct {
	Title   string      `json:"title" validate:"required"`
	Content string      `json:"content" validate:"required"`
	Date    string      `json:"date" validate:"required"`
	Link    *NoticeLink `json:"link"`
}

func (r CreateNoticeRequest) Build() *Notice {
	return &Notice{
		Title:   r.Title,
		Content: r.Content,
		Date:    r.Date,
		Link:    r.Link,
	}
}

type UpdateNoticeRequest struct {
	Title   *string     `json:"title" validate:"omitempty,min=1"`
	Content *string     `json:"content" validate:"omitempty,min=1"`
	Date    *string     `json:"date" validate:"omitempty,min=1"`
	Link    *NoticeLink `json:"link"`
}

func (r UpdateNoticeRequest) Apply(n *Notice) {
	setString(&n.Title, r.Title)
	setString(&n.Content, r.Content)
	setString(&n.Date, r.Date)
	if r.Link != nil {
		n.Link = r.Link
	}
}

// About

type UpdateAboutRequest struct {
	Description *string `json:"description"`
	Vision      *string `json:"vision"`
	Mission     *string `json:"mission"`
}

type CreateAboutFeatureRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"required"`
}

func (r CreateAboutFeatureRequest) Build() *AboutFeature {
	return &AboutFeature{
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
	}
}

type UpdateAboutFeatureRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Icon        *string `json:"icon" validate:"omitempty,min=1"`
}

func (r UpdateAboutFeatureRequest) Apply(f *AboutFeature) {
	setString(&f.Title, r.Title)
	setString(&f.Description, r.Description)
	setString(&f.Icon, r.Icon)
}

// Contact

// ContactRequest replaces the contact details wholesale
type ContactRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	Hours   string `json:"hours" validate:"required"`
	Weekend string `json:"weekend" validate:"required"`
	Social  Social `json:"social"`
}

func (r ContactRequest) Apply(c *Contact) {
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
	c.Hours = r.Hours
	c.Weekend = r.Weekend
	c.Social = r.Social
}

type SendMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (r SendMessageRequest) Build() *ContactMessage {
	return &ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// Settings

type UpdateSettingsRequest struct {
	SiteTitle  *string `json:"siteTitle"`
	BgImageURL *string `json:"bgImageUrl"`
	FooterText *string `json:"footerText"`
}

func (r UpdateSettingsRequest) Apply(s *Settings) {
	setString(&s.SiteTitle, r.SiteTitle)
	if r.BgImageURL != nil {
		s.BgImageURL = r.BgImageURL
	}
	if r.FooterText != nil {
		s.FooterText = r.FooterText
	}
}

// Content articles

type CreateArticleRequest struct {
	Title       string  `json:"title" validate:"required"`
	Content     string  `json:"content" validate:"required"`
	Image       *string `json:"image"`
	Category    string  `json:"category" validate:"required"`
	Featured    bool    `json:"featured"`
	PublishDate string  `json:"publishDate" validate:"required"`
}

func (r CreateArticleRequest) Build() *ContentArticle {
	return &ContentArticle{
		Title:       r.Title,
		Content:     r.Content,
		Image:       r.Image,
		Category:    r.Category,
		Featured:    r.Featured,
		PublishDate: r.PublishDate,
	}
}

type UpdateArticleRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Content     *string `json:"content" validate:"omitempty,min=1"`
	Image       *string `json:"image"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	Featured    *bool   `json:"featured"`
	PublishDate *string `json:"publishDate" validate:"omitempty,min=1"`
}

func (r UpdateArticleRequest) Apply(a *ContentArticle) {
	setString(&a.Title, r.Title)
	setString(&a.Content, r.Content)
	setString(&a.Category, r.Category)
	setString(&a.PublishDate, r.PublishDate)
	if r.Image != nil {
		a.Image = r.Image
	}
	if r.Featured != nil {
		a.Featured = *r.Featured
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
