// Package feed fetches and flattens the class-schedule feed. The feed is a
// nested JSON document (center -> rooms -> classes); consumers work with
// the flat allocation list instead.
package feed

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/campus-visualizer/backend/internal/models"
)

// document mirrors the feed's wire format.
type document struct {
	ID          string `json:"id"`
	Center      string `json:"centro"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Solution    struct {
		Solution []feedRoom `json:"solution"`
	} `json:"solution"`
}

type feedRoom struct {
	ID         int         `json:"id"`
	Block      string      `json:"bloco"`
	Name       string      `json:"nome"`
	Capacity   int         `json:"capacidade"`
	Type       string      `json:"tipo"`
	Accessible bool        `json:"acessivel"`
	Classes    []feedClass `json:"classes"`
}

type feedClass struct {
	ID          int      `json:"id"`
	Code        string   `json:"codigo"`
	Name        string   `json:"nome"`
	Section     string   `json:"turma"`
	Instructor  string   `json:"docente"`
	Department  string   `json:"departamento"`
	Schedule    string   `json:"horario"`
	Students    int      `json:"alunos"`
	PCD         int      `json:"pcd"`
	Preferences []string `json:"preferencias"` // null in the feed, normalized to empty
}

// Client fetches allocations from the schedule feed.
type Client struct {
	http *resty.Client
	url  string
	log  *zap.Logger
}

// NewClient creates a feed client for the given feed URL with a bounded
// request timeout.
func NewClient(url string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http: httpClient,
		url:  url,
		log:  log,
	}
}

// Fetch downloads the feed and flattens it into allocations. Any fetch or
// decode failure yields an empty result set so that viewers render empty
// tables instead of crashing; the failure is logged, never returned.
func (c *Client) Fetch(ctx context.Context) []models.Allocation {
	var doc document
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&doc).
		Get(c.url)
	if err != nil {
		c.log.Error("schedule feed fetch failed", zap.String("url", c.url), zap.Error(err))
		return nil
	}
	if resp.IsError() {
		c.log.Error("schedule feed returned an error status",
			zap.String("url", c.url), zap.Int("status", resp.StatusCode()))
		return nil
	}

	return c.flatten(doc)
}

// flatten turns the nested feed document into one allocation per
// room/class pair. Rooms without a name and classes without a course code
// cannot be joined or displayed and are skipped with a warning.
func (c *Client) flatten(doc document) []models.Allocation {
	center := models.Center{
		ID:          strings.TrimSpace(doc.ID),
		Name:        strings.TrimSpace(doc.Center),
		Date:        strings.TrimSpace(doc.Date),
		Description: strings.TrimSpace(doc.Description),
	}

	var allocations []models.Allocation
	for _, fr := range doc.Solution.Solution {
		room := models.Room{
			ID:         fr.ID,
			Block:      strings.TrimSpace(fr.Block),
			Name:       strings.TrimSpace(fr.Name),
			Capacity:   fr.Capacity,
			Type:       strings.TrimSpace(fr.Type),
			Accessible: fr.Accessible,
		}
		if room.Name == "" {
			c.log.Warn("skipping feed room without a name", zap.Int("roomId", fr.ID))
			continue
		}

		for _, fc := range fr.Classes {
			if strings.TrimSpace(fc.Code) == "" {
				c.log.Warn("skipping feed class without a course code",
					zap.Int("classId", fc.ID), zap.String("room", room.Name))
				continue
			}

			prefs := fc.Preferences
			if prefs == nil {
				prefs = []string{}
			}

			allocations = append(allocations, models.Allocation{
				Center: center,
				Room:   room,
				Course: models.CourseSection{
					ID:          fc.ID,
					Code:        strings.TrimSpace(fc.Code),
					Name:        strings.TrimSpace(fc.Name),
					Section:     strings.TrimSpace(fc.Section),
					Instructor:  strings.TrimSpace(fc.Instructor),
					Department:  strings.TrimSpace(fc.Department),
					Schedule:    strings.TrimSpace(fc.Schedule),
					Students:    fc.Students,
					PCD:         fc.PCD,
					Preferences: prefs,
				},
			})
		}
	}

	return allocations
}
