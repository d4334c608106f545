package usecase

import (
	"context"
	"errors"
	"testing"

	"estimate_app/internal/domain/entities"
	mock_interfaces "estimate_app/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_UpdateCompanyProfile(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewSettingsUseCase(nil, nil)
		_, err := uc.UpdateCompanyProfile(context.Background(), entities.CompanyProfile{CompanyName: "Acme"})
		if !errors.Is(err, ErrInvalidCompanyProfile) || !errors.Is(err, entities.ErrCompanyEmailInvalid) {
			t.Fatalf("expected ErrCompanyEmailInvalid, got %v", err)
		}
	})

	t.Run("keeps default terms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo, nil)

		repo.EXPECT().Get(gomock.Any()).Return(entities.DefaultSettings(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Settings) (entities.Settings, error) { return s, nil },
		)

		res, err := uc.UpdateCompanyProfile(context.Background(), entities.CompanyProfile{
			CompanyName: " Acme ", Email: "hi@acme.test", Phone: "1", Address: "Pune",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CompanyProfile.CompanyName != "Acme" {
			t.Fatalf("expected trimmed name, got %q", res.CompanyProfile.CompanyName)
		}
		if res.DefaultTerms.TermsAndConditions != entities.DefaultTermsAndConditions {
			t.Fatalf("default terms lost: %+v", res.DefaultTerms)
		}
	})
}

func TestSettingsUseCase_UpdateDefaultTerms(t *testing.T) {
	t.Run("terms required", func(t *testing.T) {
		uc := NewSettingsUseCase(nil, nil)
		_, err := uc.UpdateDefaultTerms(context.Background(), entities.DefaultTerms{Notes: "x"})
		if !errors.Is(err, ErrInvalidDefaultTerms) {
			t.Fatalf("expected ErrInvalidDefaultTerms, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo, nil)

		repo.EXPECT().Get(gomock.Any()).Return(entities.Settings{}, errors.New("db"))
		_, err := uc.UpdateDefaultTerms(context.Background(), entities.DefaultTerms{TermsAndConditions: "Net 30"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo, nil)

		repo.EXPECT().Get(gomock.Any()).Return(entities.DefaultSettings(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Settings) (entities.Settings, error) { return s, nil },
		)
		res, err := uc.UpdateDefaultTerms(context.Background(), entities.DefaultTerms{TermsAndConditions: "Net 30", Notes: ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.DefaultTerms.TermsAndConditions != "Net 30" {
			t.Fatalf("unexpected terms %+v", res.DefaultTerms)
		}
	})
}
