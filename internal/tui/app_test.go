// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fit-keeper/internal/adapter"
	"github.com/MKhiriev/go-fit-keeper/models"
)

func newTestRoot(auth *fakeAuth) RootModel {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(context.Background(), auth),
		"register": NewRegisterModel(context.Background(), auth),
	}
	return NewRootModel(pages, "menu", models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc123"))
}

func TestRootModel_Navigation(t *testing.T) {
	root := newTestRoot(&fakeAuth{})

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyEnter})
	root = updated.(RootModel)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: "login"}, cmd())

	updated, _ = root.Update(NavigateTo{Page: "login"})
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "ВХОД")

	updated, _ = root.Update(NavigateTo{Page: "missing"})
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "ВХОД", "unknown pages are ignored")
}

func TestRootModel_BuildInfoOnMenuOnly(t *testing.T) {
	root := newTestRoot(&fakeAuth{})

	updated, _ := root.Update(keyRunes("v"))
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "GoFitKeeper")
	assert.Contains(t, root.View(), "abc123")

	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "ГЛАВНОЕ МЕНЮ")
}

func TestRootModel_FinishesOnSignIn(t *testing.T) {
	session := models.Session{AccountID: testAccountID, Login: "athlete"}

	tests := []struct {
		name     string
		msg      tea.Msg
		wantQuit bool
	}{
		{name: "login", msg: LoginResult{Session: session}, wantQuit: true},
		{name: "register", msg: RegisterResult{Session: session}, wantQuit: true},
		{name: "failed login stays", msg: LoginResult{Err: errors.New("boom")}, wantQuit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newTestRoot(&fakeAuth{})
			updated, _ := root.Update(NavigateTo{Page: "login"})
			root = updated.(RootModel)

			updated, cmd := root.Update(tt.msg)
			root = updated.(RootModel)

			if !tt.wantQuit {
				assert.Zero(t, root.session.AccountID)
				return
			}
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Equal(t, session, root.session)
		})
	}
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := newTestRoot(&fakeAuth{})

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, updated.(RootModel).quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestLoginModel(t *testing.T) {
	auth := &fakeAuth{session: models.Session{AccountID: testAccountID, Login: "athlete"}}
	m := NewLoginModel(context.Background(), auth)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Логин и пароль обязательны", m.errMsg)

	m.inputs[0].SetValue(" athlete ")
	m.inputs[1].SetValue("secret")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Equal(t, testAccountID, result.Session.AccountID)
	require.Len(t, auth.users, 1)
	assert.Equal(t, models.User{Login: "athlete", Password: "secret"}, auth.users[0])

	m.Update(LoginResult{Err: adapter.ErrUnauthorized})
	assert.False(t, m.submitting)
	assert.Equal(t, "Неверный логин или пароль", m.errMsg)
}

func TestRegisterModel(t *testing.T) {
	auth := &fakeAuth{session: models.Session{AccountID: testAccountID}}
	m := NewRegisterModel(context.Background(), auth)

	m.inputs[0].SetValue("Rasul")
	m.inputs[1].SetValue("athlete")
	m.inputs[2].SetValue("secret")
	m.inputs[3].SetValue("other")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Пароли не совпадают", m.errMsg)

	m.inputs[3].SetValue("secret")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	result, ok := cmd().(RegisterResult)
	require.True(t, ok)
	assert.Equal(t, testAccountID, result.Session.AccountID)
	assert.Equal(t, models.User{Name: "Rasul", Login: "athlete", Password: "secret"}, auth.users[0])

	m.Update(RegisterResult{Err: adapter.ErrConflict})
	assert.Equal(t, "Логин уже занят", m.errMsg)
}
