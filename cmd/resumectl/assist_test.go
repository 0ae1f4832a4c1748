package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

func TestOptimizeMergesScoreAndPushes(t *testing.T) {
	store := testStore(t)
	testAPIServer(t)
	seedDraft(t)

	optimizeRole = "Backend Engineer"
	optimizeNoPush = false
	t.Cleanup(func() { optimizeRole = "" })

	out, err := captureStdout(t, func() error { return runOptimize(nil, nil) })
	require.NoError(t, err)
	require.Contains(t, out, "--- ATS Optimization Applied ---")
	require.Contains(t, out, "ATS score:")

	d := store.Load()
	require.True(t, d.IsAtsOptimized)
	require.NotNil(t, d.AtsScore)
	require.Equal(t, "Backend Engineer", d.TargetRole)

	// The optimized draft was pushed in the same run.
	require.NotZero(t, store.Sync().RemoteID)
}

func TestOptimizeNoPushStaysLocal(t *testing.T) {
	store := testStore(t)
	testAPIServer(t)
	seedDraft(t)

	optimizeRole = ""
	optimizeNoPush = true
	t.Cleanup(func() { optimizeNoPush = false })

	_, err := captureStdout(t, func() error { return runOptimize(nil, nil) })
	require.NoError(t, err)

	require.NotNil(t, store.Load().AtsScore)
	require.Zero(t, store.Sync().RemoteID)
}

func TestLetterSubstitutesName(t *testing.T) {
	_ = testStore(t)
	testAPIServer(t)
	seedDraft(t)

	letterRole = "Backend Engineer"
	letterCompany = "Acme"
	t.Cleanup(func() {
		letterRole = ""
		letterCompany = ""
	})

	out, err := captureStdout(t, func() error { return runLetter(nil, nil) })
	require.NoError(t, err)
	require.Contains(t, out, "Dear Acme Hiring Team,")
	require.Contains(t, out, "Jane Doe")
	require.NotContains(t, out, "[Your Name]")
}

func TestPersonalize(t *testing.T) {
	letter := "Dear Hiring Manager,\n\nSincerely,\n[Your Name]"

	named := model.NewDraft()
	named.PersonalInfo.FirstName = "Jane"
	named.PersonalInfo.LastName = "Doe"
	require.Equal(t, "Dear Hiring Manager,\n\nSincerely,\nJane Doe", personalize(letter, named))

	// Without a name the placeholder stays for the caller to fill in.
	require.Equal(t, letter, personalize(letter, model.NewDraft()))

	firstOnly := model.NewDraft()
	firstOnly.PersonalInfo.FirstName = "Jane"
	require.Equal(t, "Dear Hiring Manager,\n\nSincerely,\nJane", personalize(letter, firstOnly))
}
