package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/internal/mock"
)

func TestRun(t *testing.T) {
	errBoom := errors.New("terminal gone")

	tests := []struct {
		name    string
		runErr  error
		wantErr error
	}{
		{name: "clean exit", runErr: nil, wantErr: nil},
		{name: "run error is returned", runErr: errBoom, wantErr: errBoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			app := mock.NewMockClient(gomock.NewController(t))
			app.EXPECT().Run(ctx).Return(tt.runErr)

			err := run(ctx, app, logger.Nop())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
