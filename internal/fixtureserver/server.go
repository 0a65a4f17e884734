// Package fixtureserver exposes a social.Backend over the HTTP/JSON API that
// social.Client speaks. It is used for local development against fixture
// data.
package fixtureserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rootisgod/followgo/internal/social"
	"github.com/rsms/go-log"
)

type Server struct {
	backend social.Backend
	log     *log.Logger
}

func New(backend social.Backend, logger *log.Logger) *Server {
	return &Server{backend: backend, log: logger}
}

// Router builds the gin engine with every backend route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	// Match on the escaped path so ids containing "/" stay one segment.
	r.UseRawPath = true
	r.Use(gin.Recovery(), s.accessLog)

	r.GET(social.PathFollowing, s.users(s.backend.GetFollowingList))
	r.GET(social.PathFollowingStats, s.stats(s.backend.GetStats))
	r.POST(social.PathFollowingFetch, s.fetch(s.backend.FetchNow))

	r.GET(social.PathFollowers, s.users(s.backend.GetFollowersList))
	r.GET(social.PathFollowersStats, s.stats(s.backend.GetFollowersStats))
	r.POST(social.PathFollowersFetch, s.fetch(s.backend.FetchFollowersNow))

	r.GET(social.PathLists, s.lists)
	r.GET(social.PathListsStats, s.stats(s.backend.GetListsStats))
	r.POST(social.PathListsFetch, s.fetch(s.backend.FetchListsNow))
	r.GET(social.PathListMembers(":id"), s.listMembers)

	r.GET(social.PathAccounts, s.accounts)
	r.POST(social.PathAccounts, s.addAccount)
	r.DELETE(social.PathAccount(":id"), s.removeAccount)
	r.GET(social.PathSelected, s.selected)
	r.PUT(social.PathSelected, s.selectAccount)

	return r
}

func (s *Server) accessLog(c *gin.Context) {
	c.Next()
	s.log.Debug("%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, social.ErrAccountNotFound), errors.Is(err, social.ErrListNotFound):
		status = http.StatusNotFound
	case errors.Is(err, social.ErrNoAccount):
		status = http.StatusConflict
	}
	s.log.Warn("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(status, social.ErrorBody{Error: err.Error()})
}

func (s *Server) users(get func(context.Context) ([]social.UserRecord, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := get(c.Request.Context())
		if err != nil {
			s.fail(c, err)
			return
		}
		if users == nil {
			users = []social.UserRecord{}
		}
		c.JSON(http.StatusOK, users)
	}
}

func (s *Server) stats(get func(context.Context) (social.StatsSnapshot, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := get(c.Request.Context())
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

func (s *Server) fetch(run func(context.Context) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := run(c.Request.Context())
		if err != nil {
			s.fail(c, err)
			return
		}
		s.log.Info("%s", res)
		c.JSON(http.StatusOK, social.FetchResult{Result: res})
	}
}

func (s *Server) lists(c *gin.Context) {
	lists, err := s.backend.GetOwnedLists(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	if lists == nil {
		lists = []social.ListRecord{}
	}
	c.JSON(http.StatusOK, lists)
}

func (s *Server) listMembers(c *gin.Context) {
	id := c.Param("id")
	s.users(func(ctx context.Context) ([]social.UserRecord, error) {
		return s.backend.GetListMembers(ctx, id)
	})(c)
}

func (s *Server) accounts(c *gin.Context) {
	accounts, err := s.backend.GetAccounts(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	if accounts == nil {
		accounts = []social.AccountRecord{}
	}
	c.JSON(http.StatusOK, accounts)
}

func (s *Server) addAccount(c *gin.Context) {
	var body social.NewAccount
	if err := c.ShouldBindJSON(&body); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, social.ErrorBody{Error: err.Error()})
		return
	}
	body.Username = strings.TrimPrefix(strings.TrimSpace(body.Username), "@")
	if body.Username == "" || body.BearerToken == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, social.ErrorBody{Error: "username and bearer_token are required"})
		return
	}
	if err := s.backend.AddNewAccount(c.Request.Context(), body.Username, body.BearerToken); err != nil {
		s.fail(c, err)
		return
	}
	s.log.Info("added account @%s", body.Username)
	c.Status(http.StatusNoContent)
}

func (s *Server) removeAccount(c *gin.Context) {
	id := c.Param("id")
	if err := s.backend.RemoveAccountByID(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	s.log.Info("removed account %s", id)
	c.Status(http.StatusNoContent)
}

func (s *Server) selected(c *gin.Context) {
	id, err := s.backend.GetSelectedAccount(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, social.SelectedAccount{UserID: id})
}

func (s *Server) selectAccount(c *gin.Context) {
	var body social.SelectedAccount
	if err := c.ShouldBindJSON(&body); err != nil || body.UserID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, social.ErrorBody{Error: "user_id is required"})
		return
	}
	if err := s.backend.SelectAccount(c.Request.Context(), body.UserID); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
