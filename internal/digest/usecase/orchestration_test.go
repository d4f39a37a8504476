package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companyRepo "shield-srv/internal/company/repository"
	"shield-srv/internal/digest"
	ledgerRepo "shield-srv/internal/ledger/repository"
	"shield-srv/internal/model"
	userRepo "shield-srv/internal/user/repository"
	"shield-srv/pkg/csvfeed"
	"shield-srv/pkg/email"
	pkgLog "shield-srv/pkg/log"
	"shield-srv/pkg/meta"
	"shield-srv/pkg/slack"
	"shield-srv/pkg/timeutil"
)

const testWebhook = "https://hooks.slack.com/services/T1/B1/x"

type fakeCompanyRepo struct {
	companyRepo.Repository
	companies []model.Company
	listErr   error
}

func (f *fakeCompanyRepo) List(ctx context.Context, opts companyRepo.ListOptions) ([]model.Company, error) {
	return f.companies, f.listErr
}

func (f *fakeCompanyRepo) LatestAdAccount(ctx context.Context, companyID, provider string) (model.AdAccount, error) {
	return model.AdAccount{}, companyRepo.ErrNotFound
}

type stubUserRepo struct {
	users []model.User
}

func (f *stubUserRepo) List(ctx context.Context, companyID string) ([]model.User, error) {
	return f.users, nil
}

func (f *stubUserRepo) GetOneByEmail(ctx context.Context, email string) (model.User, error) {
	return model.User{}, userRepo.ErrNotFound
}

func (f *stubUserRepo) Create(ctx context.Context, opts userRepo.CreateOptions) (model.User, error) {
	return opts.User, nil
}

type fakeLedger struct {
	ledgerRepo.Repository
	entries  map[string]model.CronRun
	pendings []ledgerRepo.UpsertPendingOptions
	outcomes []ledgerRepo.MarkOutcomeOptions
	window   []model.CronRun
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{entries: map[string]model.CronRun{}}
}

func ledgerKey(companyID string, runDate time.Time, source string) string {
	return fmt.Sprintf("%s|%s|%s", companyID, timeutil.YMDString(runDate), source)
}

func (f *fakeLedger) Find(ctx context.Context, companyID string, runDate time.Time, source string) (model.CronRun, error) {
	entry, ok := f.entries[ledgerKey(companyID, runDate, source)]
	if !ok {
		return model.CronRun{}, ledgerRepo.ErrNotFound
	}
	return entry, nil
}

func (f *fakeLedger) UpsertPending(ctx context.Context, opts ledgerRepo.UpsertPendingOptions) (model.CronRun, error) {
	f.pendings = append(f.pendings, opts)
	entry := model.CronRun{
		CompanyID: opts.CompanyID,
		RunDate:   opts.RunDate,
		Source:    opts.Source,
		OK:        true,
		Spend:     opts.Spend,
		Cap:       opts.Cap,
	}
	f.entries[ledgerKey(opts.CompanyID, opts.RunDate, opts.Source)] = entry
	return entry, nil
}

func (f *fakeLedger) MarkOutcome(ctx context.Context, opts ledgerRepo.MarkOutcomeOptions) error {
	f.outcomes = append(f.outcomes, opts)
	key := ledgerKey(opts.CompanyID, opts.RunDate, opts.Source)
	entry := f.entries[key]
	entry.Posted = opts.Posted
	entry.OK = opts.OK
	entry.ErrorDetail = opts.ErrorDetail
	f.entries[key] = entry
	return nil
}

func (f *fakeLedger) ListWindow(ctx context.Context, opts ledgerRepo.WindowOptions) ([]model.CronRun, error) {
	return f.window, nil
}

type fakeSlack struct {
	posts    []string
	messages []slack.Message
	postErr  error
}

func (f *fakeSlack) Post(ctx context.Context, webhookURL string, msg slack.Message) error {
	if f.postErr != nil {
		return f.postErr
	}
	f.posts = append(f.posts, webhookURL)
	f.messages = append(f.messages, msg)
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

type fakeFeed struct {
	rows     []csvfeed.Row
	fetchErr error
}

func (f *fakeFeed) Fetch(ctx context.Context, feedURL string) ([]csvfeed.Row, []byte, error) {
	if f.fetchErr != nil {
		return nil, nil, f.fetchErr
	}
	return f.rows, []byte("raw"), nil
}

type fakeMeta struct {
	accounts []meta.AdAccount
	insights []meta.Insight
	err      error
}

func (f *fakeMeta) ListAdAccounts(ctx context.Context, accessToken string) ([]meta.AdAccount, error) {
	return f.accounts, f.err
}

func (f *fakeMeta) DailyInsights(ctx context.Context, accessToken, actID, since, until string) ([]meta.Insight, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.insights, nil
}

// plaintextEncrypter passes values through unchanged.
type plaintextEncrypter struct{}

func (plaintextEncrypter) Encrypt(plaintext string) (string, error)         { return plaintext, nil }
func (plaintextEncrypter) Decrypt(ciphertext string) (string, error)        { return ciphertext, nil }
func (plaintextEncrypter) EncryptBytesToString(data []byte) (string, error) { return string(data), nil }
func (plaintextEncrypter) DecryptStringToBytes(ciphertext string) ([]byte, error) {
	return []byte(ciphertext), nil
}

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal, Mode: pkgLog.ModeProduction, Encoding: pkgLog.EncodingConsole})
}

func newTestUsecase(companies []model.Company, feed *fakeFeed, sl *fakeSlack, now time.Time) (*usecase, *fakeLedger) {
	ledger := newFakeLedger()
	uc := &usecase{
		l:           testLogger(),
		companyRepo: &fakeCompanyRepo{companies: companies},
		userRepo:    &stubUserRepo{},
		ledgerRepo:  ledger,
		slack:       sl,
		email:       &fakeEmail{},
		meta:        &fakeMeta{},
		feed:        feed,
		encrypter:   plaintextEncrypter{},
		clock:       func() time.Time { return now },
	}
	return uc, ledger
}

func quietCompany() model.Company {
	return model.Company{
		ID:              "c1",
		Name:            "Acme",
		Timezone:        "UTC",
		Currency:        "USD",
		MinSeverity:     model.SeverityWarn,
		QuietStart:      "21:00",
		QuietEnd:        "07:00",
		DigestHourLocal: 9,
		SlackWebhookURL: testWebhook,
		FeedURL:         "https://feeds.example.com/alerts.csv",
	}
}

// 22:00 UTC, inside the 21:00-07:00 window.
var quietNow = time.Date(2026, 8, 29, 22, 0, 0, 0, time.UTC)

func TestRunAlertScan_QuietHoursSuppression(t *testing.T) {
	feed := &fakeFeed{rows: []csvfeed.Row{
		{ID: "1", Text: "all good", Severity: "OK"},
		{ID: "2", Text: "spend climbing", Severity: "WARN"},
	}}
	sl := &fakeSlack{}
	uc, _ := newTestUsecase([]model.Company{quietCompany()}, feed, sl, quietNow)

	summary, err := uc.RunAlertScan(context.Background(), digest.RunInput{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Scanned)
	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 1, summary.Skipped[digest.SkipSeverity])
	assert.Equal(t, 1, summary.Skipped[digest.SkipQuietHours])
	assert.Empty(t, sl.posts)
}

func TestRunAlertScan_CritBypassesQuietHours(t *testing.T) {
	feed := &fakeFeed{rows: []csvfeed.Row{
		{ID: "1", Text: "account disabled", Severity: "CRIT"},
	}}
	sl := &fakeSlack{}
	uc, ledger := newTestUsecase([]model.Company{quietCompany()}, feed, sl, quietNow)

	summary, err := uc.RunAlertScan(context.Background(), digest.RunInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Sent)
	require.Len(t, sl.posts, 1)
	assert.Equal(t, testWebhook, sl.posts[0])
	require.Len(t, ledger.outcomes, 1)
	assert.True(t, ledger.outcomes[0].Posted)
	assert.True(t, ledger.outcomes[0].OK)
}

func TestRunAlertScan_NoWebhookConfigured(t *testing.T) {
	c := quietCompany()
	c.SlackWebhookURL = ""
	c.QuietStart, c.QuietEnd = "", ""
	feed := &fakeFeed{rows: []csvfeed.Row{
		{ID: "1", Text: "account disabled", Severity: "CRIT"},
	}}
	sl := &fakeSlack{}
	uc, ledger := newTestUsecase([]model.Company{c}, feed, sl, quietNow)

	summary, err := uc.RunAlertScan(context.Background(), digest.RunInput{})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 1, summary.Skipped[digest.SkipNoWebhook])
	assert.Empty(t, sl.posts)
	assert.Empty(t, ledger.pendings)
}

func TestRunAlertScan_PostedShortCircuits(t *testing.T) {
	c := quietCompany()
	c.QuietStart, c.QuietEnd = "", ""
	feed := &fakeFeed{rows: []csvfeed.Row{{ID: "1", Text: "boom", Severity: "CRIT"}}}
	sl := &fakeSlack{}
	uc, ledger := newTestUsecase([]model.Company{c}, feed, sl, quietNow)

	runDate := timeutil.LocalYMD(quietNow, c.Timezone)
	ledger.entries[ledgerKey(c.ID, runDate, model.SourceAlerts)] = model.CronRun{
		CompanyID: c.ID, RunDate: runDate, Source: model.SourceAlerts, OK: true, Posted: true,
	}

	summary, err := uc.RunAlertScan(context.Background(), digest.RunInput{})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 1, summary.Skipped[digest.SkipAlreadyPosted])
	assert.Empty(t, sl.posts)
}

func TestRunAlertScan_DryRunNeverDispatchesOrPosts(t *testing.T) {
	c := quietCompany()
	c.QuietStart, c.QuietEnd = "", ""
	feed := &fakeFeed{rows: []csvfeed.Row{{ID: "1", Text: "boom", Severity: "CRIT"}}}
	sl := &fakeSlack{}
	uc, ledger := newTestUsecase([]model.Company{c}, feed, sl, quietNow)

	summary, err := uc.RunAlertScan(context.Background(), digest.RunInput{Dry: true})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Sent)
	assert.Empty(t, sl.posts)
	assert.Empty(t, ledger.outcomes)
	for _, entry := range ledger.entries {
		assert.False(t, entry.Posted)
	}
}

func TestRunAlertScan_BrandRoutingPrecedence(t *testing.T) {
	brandHook := "https://hooks.slack.com/services/T2/B2/y"
	c := quietCompany()
	c.QuietStart, c.QuietEnd = "", ""
	c.MinSeverity = model.SeverityOK
	c.BrandWebhooks = map[string]string{"shoes": brandHook}
	feed := &fakeFeed{rows: []csvfeed.Row{
		{ID: "1", Text: "branded alert", Severity: "WARN", Brand: "shoes"},
		{ID: "2", Text: "global alert", Severity: "WARN"},
	}}
	sl := &fakeSlack{}
	uc, _ := newTestUsecase([]model.Company{c}, feed, sl, quietNow)

	summary, err := uc.RunAlertScan(context.Background(), digest.RunInput{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Sent)
	require.Len(t, sl.posts, 2)
	assert.Contains(t, sl.posts, brandHook)
	assert.Contains(t, sl.posts, testWebhook)
}

func TestRunAlertScan_FetchFailureSkipsCompany(t *testing.T) {
	ok := quietCompany()
	ok.ID = "c2"
	ok.QuietStart, ok.QuietEnd = "", ""

	broken := &fakeFeed{fetchErr: fmt.Errorf("csvfeed 500: upstream")}
	sl := &fakeSlack{}
	uc, _ := newTestUsecase([]model.Company{ok}, broken, sl, quietNow)

	summary, err := uc.RunAlertScan(context.Background(), digest.RunInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped[digest.SkipFetchFailed])
	assert.Empty(t, sl.posts)
}

func TestRunAlertScan_ListErrorAbortsBatch(t *testing.T) {
	uc, _ := newTestUsecase(nil, &fakeFeed{}, &fakeSlack{}, quietNow)
	uc.companyRepo = &fakeCompanyRepo{listErr: fmt.Errorf("store unreachable")}

	_, err := uc.RunAlertScan(context.Background(), digest.RunInput{})
	assert.Error(t, err)
}

func TestRunDailyDigest_HourGate(t *testing.T) {
	c := quietCompany()
	c.QuietStart, c.QuietEnd = "", ""
	c.DigestHourLocal = 9
	feed := &fakeFeed{rows: []csvfeed.Row{{ID: "1", Text: "warn", Severity: "WARN"}}}

	t.Run("skips outside the digest hour", func(t *testing.T) {
		sl := &fakeSlack{}
		uc, _ := newTestUsecase([]model.Company{c}, feed, sl, quietNow)
		summary, err := uc.RunDailyDigest(context.Background(), digest.RunInput{})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Skipped[digest.SkipNotDue])
		assert.Empty(t, sl.posts)
	})

	t.Run("force bypasses the gate", func(t *testing.T) {
		sl := &fakeSlack{}
		uc, _ := newTestUsecase([]model.Company{c}, feed, sl, quietNow)
		summary, err := uc.RunDailyDigest(context.Background(), digest.RunInput{Force: true})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Sent)
		assert.Len(t, sl.posts, 1)
	})

	t.Run("sends at the configured hour", func(t *testing.T) {
		sl := &fakeSlack{}
		at9 := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
		uc, _ := newTestUsecase([]model.Company{c}, feed, sl, at9)
		summary, err := uc.RunDailyDigest(context.Background(), digest.RunInput{})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Sent)
	})
}

func TestRunDailyDigest_EmailFanOut(t *testing.T) {
	c := quietCompany()
	c.QuietStart, c.QuietEnd = "", ""
	feed := &fakeFeed{rows: []csvfeed.Row{{ID: "1", Text: "warn", Severity: "WARN"}}}
	sl := &fakeSlack{}
	mail := &fakeEmail{}
	uc, _ := newTestUsecase([]model.Company{c}, feed, sl, quietNow)
	uc.email = mail
	uc.userRepo = &stubUserRepo{users: []model.User{
		{ID: "u1", CompanyID: c.ID, Email: "a@acme.test"},
		{ID: "u2", CompanyID: c.ID, Email: "b@acme.test"},
	}}

	_, err := uc.RunDailyDigest(context.Background(), digest.RunInput{Force: true})
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	assert.ElementsMatch(t, []string{"a@acme.test", "b@acme.test"}, mail.sent[0].To)
	assert.Contains(t, mail.sent[0].Subject, "Acme")
}

func TestRunSpendDigest_RecordsSnapshotBeforeDispatch(t *testing.T) {
	c := quietCompany()
	c.MetaAccessToken = "tok"
	c.MetaAdAccountID = "act_1"
	c.DailyCapAmount = 100
	sl := &fakeSlack{}
	uc, ledger := newTestUsecase([]model.Company{c}, &fakeFeed{}, sl, quietNow)
	uc.meta = &fakeMeta{insights: []meta.Insight{{Spend: 42.5}}}

	summary, err := uc.RunSpendDigest(context.Background(), digest.RunInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Sent)
	require.Len(t, ledger.pendings, 1)
	assert.Equal(t, 42.5, ledger.pendings[0].Spend)
	assert.Equal(t, 100.0, ledger.pendings[0].Cap)
	require.Len(t, ledger.outcomes, 1)
	assert.True(t, ledger.outcomes[0].Posted)
}

func TestRunSpendDigest_DispatchFailureRecordsFailed(t *testing.T) {
	c := quietCompany()
	c.MetaAccessToken = "tok"
	c.MetaAdAccountID = "act_1"
	sl := &fakeSlack{postErr: fmt.Errorf("slack 500: upstream")}
	uc, ledger := newTestUsecase([]model.Company{c}, &fakeFeed{}, sl, quietNow)
	uc.meta = &fakeMeta{insights: []meta.Insight{{Spend: 10}}}

	summary, err := uc.RunSpendDigest(context.Background(), digest.RunInput{})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Sent)
	assert.Equal(t, 1, summary.Skipped[digest.SkipDispatchFailed])
	require.Len(t, ledger.outcomes, 1)
	assert.False(t, ledger.outcomes[0].Posted)
	assert.False(t, ledger.outcomes[0].OK)
	assert.Contains(t, ledger.outcomes[0].ErrorDetail, "slack 500")
}

func TestRunGuardrail_FiresOnlyOverCap(t *testing.T) {
	c := quietCompany()
	c.MetaAccessToken = "tok"
	c.MetaAdAccountID = "act_1"
	c.DailyCapAmount = 50

	t.Run("under cap", func(t *testing.T) {
		sl := &fakeSlack{}
		uc, _ := newTestUsecase([]model.Company{c}, &fakeFeed{}, sl, quietNow)
		uc.meta = &fakeMeta{insights: []meta.Insight{{Spend: 49.99}}}
		summary, err := uc.RunGuardrail(context.Background(), digest.RunInput{})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Skipped[digest.SkipUnderCap])
		assert.Empty(t, sl.posts)
	})

	t.Run("over cap", func(t *testing.T) {
		sl := &fakeSlack{}
		uc, _ := newTestUsecase([]model.Company{c}, &fakeFeed{}, sl, quietNow)
		uc.meta = &fakeMeta{insights: []meta.Insight{{Spend: 50.01}}}
		summary, err := uc.RunGuardrail(context.Background(), digest.RunInput{})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Sent)
		require.Len(t, sl.messages, 1)
		assert.Contains(t, sl.messages[0].Text, "exceeds cap")
	})
}

func TestRunWeeklyReceipt_Aggregation(t *testing.T) {
	c := quietCompany()
	c.SummaryWebhookURL = "https://hooks.slack.com/services/T3/B3/z"
	sl := &fakeSlack{}
	uc, ledger := newTestUsecase([]model.Company{c}, &fakeFeed{}, sl, quietNow)
	ledger.window = []model.CronRun{
		{OK: true, Spend: 10, Cap: 100},  // safe
		{OK: true, Spend: 85, Cap: 100},  // risk (>= 80%)
		{OK: true, Spend: 120, Cap: 100}, // hit
		{OK: false},                      // failure
	}

	summary, err := uc.RunWeeklyReceipt(context.Background(), digest.RunInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Sent)
	require.Len(t, sl.posts, 1)
	// summary endpoint wins over global for receipts
	assert.Equal(t, c.SummaryWebhookURL, sl.posts[0])

	st := aggregateWeek(ledger.window)
	assert.Equal(t, 1, st.safeDays)
	assert.Equal(t, 1, st.capRisks)
	assert.Equal(t, 1, st.capHits)
	assert.Equal(t, 1, st.failures)
	assert.Equal(t, 215.0, st.totalSpend)
}

func TestRunWeeklyReceipt_NoDataSkips(t *testing.T) {
	c := quietCompany()
	sl := &fakeSlack{}
	uc, _ := newTestUsecase([]model.Company{c}, &fakeFeed{}, sl, quietNow)

	summary, err := uc.RunWeeklyReceipt(context.Background(), digest.RunInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped[digest.SkipNoData])
	assert.Empty(t, sl.posts)
}
