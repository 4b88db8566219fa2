package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rbvitales/yearbook-api/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAllEmptyQuery(t *testing.T) {
	albums := newFakeAlbumStore()
	students := newFakeStudentStore()
	history := &fakeHistoryStore{}
	svc := NewSearchService(albums, students, history)

	result, err := svc.SearchAll(context.Background(), 42, "   ")
	require.NoError(t, err)

	assert.Empty(t, result.Albums)
	assert.Empty(t, result.Students)
	assert.NotNil(t, result.Albums, "collections are empty, never nil")
	assert.NotNil(t, result.Students)
	assert.Zero(t, albums.searchCalls)
	assert.Zero(t, students.searchCalls)
	assert.Empty(t, history.created)
}

func TestSearchAllReturnsBothCollections(t *testing.T) {
	albums := newFakeAlbumStore()
	albums.searchAlbums = []models.Album{{ID: 1, Title: "BSIT 2024"}}
	students := newFakeStudentStore()
	students.searchStudents = []models.Student{{ID: 2, FirstName: "Maria"}, {ID: 3, FirstName: "Mario"}}
	history := &fakeHistoryStore{}
	svc := NewSearchService(albums, students, history)

	result, err := svc.SearchAll(context.Background(), 42, " maria ")
	require.NoError(t, err)

	assert.Equal(t, "maria", result.Query)
	assert.Len(t, result.Albums, 1)
	assert.Len(t, result.Students, 2)
	assert.Zero(t, students.lastLimit, "unified search is not capped")

	require.Len(t, history.created, 1)
	assert.Equal(t, models.SearchTypeAll, history.created[0].SearchType)
	assert.Equal(t, "maria", history.created[0].SearchQuery)
}

func TestSearchAllSwallowsHistoryFailure(t *testing.T) {
	albums := newFakeAlbumStore()
	students := newFakeStudentStore()
	history := &fakeHistoryStore{createErr: errors.New("disk full")}
	svc := NewSearchService(albums, students, history)

	_, err := svc.SearchAll(context.Background(), 42, "maria")
	require.NoError(t, err)
}

func TestSearchAllPropagatesStoreError(t *testing.T) {
	albums := newFakeAlbumStore()
	albums.searchErr = errors.New("connection reset")
	svc := NewSearchService(albums, newFakeStudentStore(), &fakeHistoryStore{})

	_, err := svc.SearchAll(context.Background(), 42, "maria")
	assert.Error(t, err)
}

func TestRecentSearchesDefaultLimit(t *testing.T) {
	history := &fakeHistoryStore{}
	svc := NewSearchService(newFakeAlbumStore(), newFakeStudentStore(), history)

	_, err := svc.RecentSearches(context.Background(), 42, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultRecentSearches, history.lastLimit)

	_, err = svc.RecentSearches(context.Background(), 42, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, history.lastLimit)
}
