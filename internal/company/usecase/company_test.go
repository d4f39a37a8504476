package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shield-srv/internal/company"
	"shield-srv/internal/company/repository"
	"shield-srv/internal/model"
	"shield-srv/pkg/email"
	pkgLog "shield-srv/pkg/log"
	"shield-srv/pkg/slack"
)

const validHook = "https://hooks.slack.com/services/T1/B1/x"

type fakeRepo struct {
	repository.Repository
	company    model.Company
	detailErr  error
	updated    *model.Company
	brands     []model.Brand
	brandErr   error
	adErr      error
	adAccounts []model.AdAccount
}

func (f *fakeRepo) Detail(ctx context.Context, id string) (model.Company, error) {
	if f.detailErr != nil {
		return model.Company{}, f.detailErr
	}
	return f.company, nil
}

func (f *fakeRepo) Update(ctx context.Context, opts repository.UpdateOptions) (model.Company, error) {
	f.updated = &opts.Company
	return opts.Company, nil
}

func (f *fakeRepo) ListBrands(ctx context.Context, companyID string) ([]model.Brand, error) {
	return f.brands, nil
}

func (f *fakeRepo) CreateBrand(ctx context.Context, opts repository.CreateBrandOptions) (model.Brand, error) {
	if f.brandErr != nil {
		return model.Brand{}, f.brandErr
	}
	b := opts.Brand
	b.ID = "b1"
	return b, nil
}

func (f *fakeRepo) CreateAdAccount(ctx context.Context, opts repository.CreateAdAccountOptions) (model.AdAccount, error) {
	if f.adErr != nil {
		return model.AdAccount{}, f.adErr
	}
	a := opts.AdAccount
	a.ID = "a1"
	f.adAccounts = append(f.adAccounts, a)
	return a, nil
}

type fakeSlack struct {
	posts []string
	texts []string
}

func (f *fakeSlack) Post(ctx context.Context, webhookURL string, msg slack.Message) error {
	f.posts = append(f.posts, webhookURL)
	f.texts = append(f.texts, msg.Text)
	return nil
}

func (f *fakeSlack) ReportBug(ctx context.Context, message string) error { return nil }

type fakeEmail struct {
	sent []email.Email
}

func (f *fakeEmail) Send(ctx context.Context, e email.Email) error {
	f.sent = append(f.sent, e)
	return nil
}

type stubEncrypter struct{}

func (stubEncrypter) Encrypt(plaintext string) (string, error)  { return "enc:" + plaintext, nil }
func (stubEncrypter) Decrypt(ciphertext string) (string, error) { return ciphertext, nil }
func (stubEncrypter) EncryptBytesToString(data []byte) (string, error) {
	return string(data), nil
}
func (stubEncrypter) DecryptStringToBytes(ciphertext string) ([]byte, error) {
	return []byte(ciphertext), nil
}

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal, Mode: pkgLog.ModeProduction, Encoding: pkgLog.EncodingConsole})
}

func newTestUsecase(repo *fakeRepo, sl *fakeSlack, mail *fakeEmail) *usecase {
	return &usecase{
		l:         testLogger(),
		repo:      repo,
		slack:     sl,
		email:     mail,
		encrypter: stubEncrypter{},
		clock:     time.Now,
	}
}

func baseCompany() model.Company {
	return model.Company{
		ID:          "c1",
		Name:        "Acme",
		Timezone:    "UTC",
		Currency:    "USD",
		MinSeverity: model.SeverityOK,
	}
}

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func TestUpdateSettings_Validation(t *testing.T) {
	sc := model.Scope{CompanyID: "c1"}

	tests := []struct {
		name    string
		input   company.UpdateSettingsInput
		wantErr error
	}{
		{
			name:    "bad timezone",
			input:   company.UpdateSettingsInput{Timezone: strPtr("Mars/Olympus")},
			wantErr: company.ErrInvalidTimezone,
		},
		{
			name:    "quiet start without end",
			input:   company.UpdateSettingsInput{QuietStart: strPtr("21:00")},
			wantErr: company.ErrInvalidQuietHours,
		},
		{
			name:    "quiet hours not HH:MM",
			input:   company.UpdateSettingsInput{QuietStart: strPtr("9pm"), QuietEnd: strPtr("07:00")},
			wantErr: company.ErrInvalidQuietHours,
		},
		{
			name:    "webhook on wrong host",
			input:   company.UpdateSettingsInput{SlackWebhookURL: strPtr("https://evil.example.com/services/T/B/X")},
			wantErr: company.ErrInvalidWebhookURL,
		},
		{
			name:    "malformed brand map",
			input:   company.UpdateSettingsInput{BrandWebhooks: strPtr("{broken")},
			wantErr: company.ErrInvalidBrandMap,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{company: baseCompany()}
			uc := newTestUsecase(repo, &fakeSlack{}, &fakeEmail{})

			_, err := uc.UpdateSettings(context.Background(), sc, tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, repo.updated)
		})
	}
}

func TestUpdateSettings_AppliesChanges(t *testing.T) {
	sc := model.Scope{CompanyID: "c1"}
	repo := &fakeRepo{company: baseCompany()}
	uc := newTestUsecase(repo, &fakeSlack{}, &fakeEmail{})

	out, err := uc.UpdateSettings(context.Background(), sc, company.UpdateSettingsInput{
		Timezone:        strPtr("Asia/Ho_Chi_Minh"),
		Currency:        strPtr("vnd"),
		MinSeverity:     strPtr("warning"),
		QuietStart:      strPtr("22:00"),
		QuietEnd:        strPtr("06:30"),
		DigestHourLocal: intPtr(8),
		SlackWebhookURL: strPtr(validHook),
		BrandWebhooks:   strPtr("shoes=" + validHook),
		DailyCapAmount:  f64Ptr(250),
		MetaAccessToken: strPtr("secret-token"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Asia/Ho_Chi_Minh", out.Timezone)
	assert.Equal(t, "VND", out.Currency)
	assert.Equal(t, model.SeverityWarn, out.MinSeverity)
	assert.Equal(t, "22:00", out.QuietStart)
	assert.Equal(t, "06:30", out.QuietEnd)
	assert.Equal(t, 8, out.DigestHourLocal)
	assert.Equal(t, validHook, out.SlackWebhookURL)
	assert.Equal(t, map[string]string{"shoes": validHook}, out.BrandWebhooks)
	assert.Equal(t, 250.0, out.DailyCapAmount)
	// stored encrypted, never as given
	assert.Equal(t, "enc:secret-token", out.MetaAccessToken)
}

func TestUpdateSettings_DigestHourClamped(t *testing.T) {
	sc := model.Scope{CompanyID: "c1"}
	repo := &fakeRepo{company: baseCompany()}
	uc := newTestUsecase(repo, &fakeSlack{}, &fakeEmail{})

	out, err := uc.UpdateSettings(context.Background(), sc, company.UpdateSettingsInput{
		DigestHourLocal: intPtr(26),
	})
	require.NoError(t, err)
	assert.Equal(t, defaultDigestHour, out.DigestHourLocal)
}

func TestSendTestSlack(t *testing.T) {
	sc := model.Scope{CompanyID: "c1"}

	t.Run("no webhook configured", func(t *testing.T) {
		repo := &fakeRepo{company: baseCompany()}
		uc := newTestUsecase(repo, &fakeSlack{}, &fakeEmail{})

		err := uc.SendTestSlack(context.Background(), sc, company.SendTestSlackInput{})
		assert.ErrorIs(t, err, company.ErrNoWebhook)
	})

	t.Run("posts to global webhook", func(t *testing.T) {
		c := baseCompany()
		c.SlackWebhookURL = validHook
		repo := &fakeRepo{company: c}
		sl := &fakeSlack{}
		uc := newTestUsecase(repo, sl, &fakeEmail{})

		err := uc.SendTestSlack(context.Background(), sc, company.SendTestSlackInput{Text: "ping"})
		require.NoError(t, err)
		require.Len(t, sl.posts, 1)
		assert.Equal(t, validHook, sl.posts[0])
		assert.Equal(t, "ping", sl.texts[0])
	})
}

func TestAttachAdAccount(t *testing.T) {
	sc := model.Scope{CompanyID: "c1"}

	t.Run("brand must belong to company", func(t *testing.T) {
		repo := &fakeRepo{company: baseCompany(), brands: []model.Brand{{ID: "other"}}}
		uc := newTestUsecase(repo, &fakeSlack{}, &fakeEmail{})

		_, err := uc.AttachAdAccount(context.Background(), sc, company.AttachAdAccountInput{
			BrandID: "b9", Provider: "meta", ExternalID: "act_1",
		})
		assert.ErrorIs(t, err, company.ErrBrandNotFound)
	})

	t.Run("duplicate attachment", func(t *testing.T) {
		repo := &fakeRepo{
			company: baseCompany(),
			brands:  []model.Brand{{ID: "b1", CompanyID: "c1"}},
			adErr:   repository.ErrDuplicate,
		}
		uc := newTestUsecase(repo, &fakeSlack{}, &fakeEmail{})

		_, err := uc.AttachAdAccount(context.Background(), sc, company.AttachAdAccountInput{
			BrandID: "b1", Provider: "meta", ExternalID: "act_1",
		})
		assert.ErrorIs(t, err, company.ErrAdAccountExists)
	})

	t.Run("success", func(t *testing.T) {
		repo := &fakeRepo{
			company: baseCompany(),
			brands:  []model.Brand{{ID: "b1", CompanyID: "c1"}},
		}
		uc := newTestUsecase(repo, &fakeSlack{}, &fakeEmail{})

		out, err := uc.AttachAdAccount(context.Background(), sc, company.AttachAdAccountInput{
			BrandID: "b1", Provider: "meta", ExternalID: "act_1",
		})
		require.NoError(t, err)
		assert.Equal(t, "b1", out.BrandID)
		assert.Equal(t, "meta", out.Provider)
	})
}
