package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	mockRepo "petwelfare/internal/mocks/repository"
	mockSvc "petwelfare/internal/mocks/service"
	mockUC "petwelfare/internal/mocks/usecase"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func runTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": success, "data": data})
}

func TestRunSmoke(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			writeEnvelope(w, http.StatusOK, true, map[string]string{"status": "ok"})
		case "/api/modules":
			writeEnvelope(w, http.StatusOK, true, []string{"adoption"})
		case "/api/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != "secret1" {
				writeEnvelope(w, http.StatusUnauthorized, false, nil)

				return
			}
			writeEnvelope(w, http.StatusOK, true, map[string]string{"token": "tok-1"})
		case "/api/auth/me":
			gotAuth = r.Header.Get("Authorization")
			writeEnvelope(w, http.StatusOK, true, map[string]string{"email": "ops@example.com"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("all steps pass", func(t *testing.T) {
		results := runSmoke(context.Background(), srv.Client(), smokeOptions{
			BaseURL:  srv.URL + "/",
			Email:    "ops@example.com",
			Password: "secret1",
		})

		require.Len(t, results, 4)
		for _, r := range results {
			assert.True(t, r.Passed, r.Step)
		}
		assert.Equal(t, "Bearer tok-1", gotAuth)

		var out bytes.Buffer
		assert.Equal(t, 0, printSmokeReport(&out, results))
		assert.Contains(t, out.String(), "current user")
	})

	t.Run("bad credentials stop after login", func(t *testing.T) {
		results := runSmoke(context.Background(), srv.Client(), smokeOptions{
			BaseURL:  srv.URL,
			Email:    "ops@example.com",
			Password: "wrong",
		})

		require.Len(t, results, 3)
		assert.False(t, results[2].Passed)
		assert.Equal(t, http.StatusUnauthorized, results[2].Status)

		var out bytes.Buffer
		assert.Equal(t, 1, printSmokeReport(&out, results))
		assert.Contains(t, out.String(), "FAIL")
	})

	t.Run("without credentials only public steps run", func(t *testing.T) {
		results := runSmoke(context.Background(), srv.Client(), smokeOptions{BaseURL: srv.URL})
		assert.Len(t, results, 2)
	})
}

func TestCheckCertificates(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	apps := mockRepo.NewMockAdoptionApplicationRepository(t)
	storage := mockSvc.NewMockFileStorage(t)
	runTx(txManager, factory)

	factory.EXPECT().AdoptionApplicationRepo().Return(apps)
	apps.EXPECT().ListWithCertificates(mock.Anything).Return([]*entity.AdoptionApplication{
		{ID: uuid.New(), Certificate: &entity.AdoptionCertificate{
			Number: "ADC-20261001-0001",
			URL:    "/uploads/adoption/certificates/a.pdf",
			QRURL:  "/uploads/adoption/certificates/a.png",
		}},
		{ID: uuid.New(), Certificate: &entity.AdoptionCertificate{
			Number: "ADC-20261002-0001",
			URL:    "https://cdn.example.com/b.pdf",
		}},
	}, nil).Once()

	storage.EXPECT().KeyFromURL("/uploads/adoption/certificates/a.pdf").Return("adoption/certificates/a.pdf", true)
	storage.EXPECT().KeyFromURL("/uploads/adoption/certificates/a.png").Return("adoption/certificates/a.png", true)
	storage.EXPECT().KeyFromURL("https://cdn.example.com/b.pdf").Return("", false)
	storage.EXPECT().Exists(mock.Anything, "adoption/certificates/a.pdf").Return(true, nil)
	storage.EXPECT().Exists(mock.Anything, "adoption/certificates/a.png").Return(false, nil)

	files, err := checkCertificates(context.Background(), txManager, storage)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, certOK, files[0].Status)
	assert.Equal(t, certMissing, files[1].Status)
	assert.Equal(t, certForeign, files[2].Status)

	var out bytes.Buffer
	assert.Equal(t, 1, printCertReport(&out, files))
	assert.Contains(t, out.String(), "3 file(s) checked, 1 missing")
}

func TestFixSuperAdmin(t *testing.T) {
	input := superAdminInput{Email: "root@example.com", Name: "Root", Password: "N3w-secret"}

	t.Run("creates missing account", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		users := mockRepo.NewMockUserRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)
		roleUC := mockUC.NewMockRoleUsecase(t)
		runTx(txManager, factory)

		roleUC.EXPECT().InitializeDefaults(mock.Anything).Return(2, nil).Once()
		hasher.EXPECT().Hash("N3w-secret").Return("hashed", nil).Once()
		factory.EXPECT().UserRepo().Return(users)
		users.EXPECT().FindByEmail(mock.Anything, "root@example.com").Return(nil, repository.ErrNotFound).Once()
		users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleSuperAdmin && u.IsActive && u.PasswordHash == "hashed"
		})).Return(nil).Once()

		result, err := fixSuperAdmin(context.Background(), txManager, hasher, roleUC, input)
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, 2, result.RolesSeeded)
	})

	t.Run("repairs demoted account", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		users := mockRepo.NewMockUserRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)
		roleUC := mockUC.NewMockRoleUsecase(t)
		runTx(txManager, factory)

		existing := &entity.User{
			ID:                 uuid.New(),
			Email:              "root@example.com",
			Role:               entity.ModuleRoleName(entity.ModuleShelter, entity.StaffManager),
			Module:             entity.ModuleShelter,
			AuthProvider:       entity.AuthProviderGoogle,
			MustChangePassword: true,
		}

		roleUC.EXPECT().InitializeDefaults(mock.Anything).Return(0, nil).Once()
		hasher.EXPECT().Hash("N3w-secret").Return("hashed", nil).Once()
		factory.EXPECT().UserRepo().Return(users)
		users.EXPECT().FindByEmail(mock.Anything, "root@example.com").Return(existing, nil).Once()
		users.EXPECT().Update(mock.Anything, existing).Return(nil).Once()

		result, err := fixSuperAdmin(context.Background(), txManager, hasher, roleUC, input)
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, entity.RoleSuperAdmin, existing.Role)
		assert.Empty(t, existing.Module)
		assert.True(t, existing.IsActive)
		assert.False(t, existing.MustChangePassword)
		assert.Equal(t, entity.AuthProviderBoth, existing.AuthProvider)

		var out bytes.Buffer
		printSuperAdminResult(&out, result)
		assert.Contains(t, out.String(), "shelter_manager -> super_admin")
	})
}

func TestSuperAdminInputDefaults(t *testing.T) {
	in := superAdminInput{Email: "  Root@Example.com "}.withDefaults(nil)
	assert.Equal(t, "root@example.com", in.Email)
	assert.Equal(t, "Super Admin", in.Name)
}
