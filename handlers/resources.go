// Copyright (c) 2025 The innovationhub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/models"
	"github.com/KingLex25/innovationhub/store"
)

type (
	EventHandler   = CRUDHandler[models.Event, models.CreateEventRequest, models.UpdateEventRequest]
	TeamHandler    = CRUDHandler[models.TeamMember, models.CreateTeamMemberRequest, models.UpdateTeamMemberRequest]
	NoticeHandler  = CRUDHandler[models.Notice, models.CreateNoticeRequest, models.UpdateNoticeRequest]
	FeatureHandler = CRUDHandler[models.AboutFeature, models.CreateAboutFeatureRequest, models.UpdateAboutFeatureRequest]
	ArticleHandler = CRUDHandler[models.ContentArticle, models.CreateArticleRequest, models.UpdateArticleRequest]
)

func NewEventHandler(db *bun.DB) *EventHandler {
	return NewCRUDHandler[models.Event, models.CreateEventRequest, models.UpdateEventRequest]("Event", store.NewEvents(db))
}

func NewTeamHandler(db *bun.DB) *TeamHandler {
	return NewCRUDHandler[models.TeamMember, models.CreateTeamMemberRequest, models.UpdateTeamMemberRequest]("Team member", store.NewTeam(db))
}

func NewNoticeHandler(db *bun.DB) *NoticeHandler {
	return NewCRUDHandler[models.Notice, models.CreateNoticeRequest, models.UpdateNoticeRequest]("Notice", store.NewNotices(db))
}

func NewFeatureHandler(db *bun.DB) *FeatureHandler {
	return NewCRUDHandler[models.AboutFeature, models.CreateAboutFeatureRequest, models.UpdateAboutFeatureRequest]("Feature", store.NewFeatures(db))
}

func NewArticleHandler(db *bun.DB) *ArticleHandler {
	return NewCRUDHandler[models.ContentArticle, models.CreateArticleRequest, models.UpdateArticleRequest]("Article", store.NewArticles(db))
}
