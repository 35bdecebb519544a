// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/clikit/internal/pipefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_fetch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		url     string
		wantErr bool
		want    string
	}{
		{
			name:    "empty url returns error",
			url:     "",
			wantErr: true,
		},
		{
			name:    "unreachable source fails",
			url:     "git::http://notexist//pipeline.yaml",
			wantErr: true,
		},
		{
			name: "local file succeeds",
			url:  "./testdata/pipeline.yaml",
			want: "stages:\n  - command: echo -n Hi!\n  - command: base64\n  - command: base64 -d\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := fetch(context.Background(), tc.url)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrGetPipelineFile)
				assert.Nil(t, data)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, string(data))
		})
	}
}

func Test_fetchedFileParses(t *testing.T) {
	data, err := fetch(context.Background(), "./testdata/pipeline.yaml")
	require.NoError(t, err)

	def, err := pipefile.Parse(data)
	require.NoError(t, err)
	assert.Len(t, def.Stages, 3)
}
