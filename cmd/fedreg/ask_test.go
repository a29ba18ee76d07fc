package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/Sravan-create/fedreg"
	main "github.com/Sravan-create/fedreg/cmd/fedreg"
	"github.com/Sravan-create/fedreg/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(answers fedreg.AnswerService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Answers: answers,
	}, stdout, stderr
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints answer", func(t *testing.T) {
		t.Parallel()

		answers := &mock.AnswerService{
			AnswerQueryFn: func(_ context.Context, query string) (*fedreg.Answer, error) {
				assert.Equal(t, "What EPA rules were published?", query)
				return &fedreg.Answer{
					Text:          "The EPA published a clean air rule.",
					SourceContext: "--- Document 1 ---\nTitle: EPA Clean Air Rule",
				}, nil
			},
		}
		deps, stdout, _ := testDeps(answers)

		cmd := &main.AskCmd{Query: "What EPA rules were published?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "The EPA published a clean air rule.")
		assert.NotContains(t, stdout.String(), "--- Document 1 ---")
	})

	t.Run("prints sources when requested", func(t *testing.T) {
		t.Parallel()

		answers := &mock.AnswerService{
			AnswerQueryFn: func(context.Context, string) (*fedreg.Answer, error) {
				return &fedreg.Answer{
					Text:          "The EPA published a clean air rule.",
					SourceContext: "--- Document 1 ---\nTitle: EPA Clean Air Rule",
				}, nil
			},
		}
		deps, stdout, _ := testDeps(answers)

		cmd := &main.AskCmd{Query: "What EPA rules were published?", Sources: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Sources:")
		assert.Contains(t, stdout.String(), "--- Document 1 ---")
	})

	t.Run("distinguishes failure outcomes", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			err     error
			message string
		}{
			{
				name:    "query too short",
				err:     fedreg.Errorf(fedreg.EINVALID, "query too short to search"),
				message: "too short",
			},
			{
				name:    "no documents",
				err:     fedreg.Errorf(fedreg.ENOTFOUND, "no documents match query"),
				message: "No matching documents",
			},
			{
				name:    "store unavailable",
				err:     fedreg.Errorf(fedreg.EUNAVAILABLE, "document store unavailable: no such file"),
				message: "Document store unavailable",
			},
			{
				name:    "generation failed",
				err:     fedreg.Errorf(fedreg.EGENERATION, "model call timed out"),
				message: "Answer generation failed",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				answers := &mock.AnswerService{
					AnswerQueryFn: func(context.Context, string) (*fedreg.Answer, error) {
						return nil, tt.err
					},
				}
				deps, stdout, stderr := testDeps(answers)

				cmd := &main.AskCmd{Query: "EPA regulations"}
				err := cmd.Run(deps)

				require.Error(t, err)
				assert.Contains(t, stderr.String(), tt.message)
				assert.Empty(t, stdout.String(), "no answer text on failure")
			})
		}
	})
}
