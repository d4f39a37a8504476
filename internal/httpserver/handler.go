package httpserver

import (
	companyHTTP "shield-srv/internal/company/delivery/http"
	companyPostgres "shield-srv/internal/company/repository/postgre"
	companyUC "shield-srv/internal/company/usecase"
	digestHTTP "shield-srv/internal/digest/delivery/http"
	digestUC "shield-srv/internal/digest/usecase"
	ledgerPostgres "shield-srv/internal/ledger/repository/postgre"
	"shield-srv/internal/middleware"
	userPostgres "shield-srv/internal/user/repository/postgre"

	// Executes the init function in docs.go which registers the Swagger docs.
	_ "shield-srv/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api         = "/api/v1"
	InternalApi = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(middleware.Recovery(srv.l, srv.slack))

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.l, srv.jwtMgr, srv.cronSecret, srv.redis)

	// repositories
	companyRepo := companyPostgres.New(srv.l, srv.db)
	userRepo := userPostgres.New(srv.l, srv.db)
	ledgerRepo := ledgerPostgres.New(srv.l, srv.db)

	// usecases
	companyUseCase := companyUC.New(srv.l, companyRepo, userRepo, srv.slack, srv.email, srv.encrypter)
	digestUseCase := digestUC.New(
		srv.l, companyRepo, userRepo, ledgerRepo,
		srv.slack, srv.email, srv.meta, srv.feed,
		srv.minio, srv.bucket, srv.encrypter,
	)

	// handlers
	api := srv.gin.Group(Api)
	companyHTTP.New(srv.l, companyUseCase).RegisterRoutes(api, mw)

	cron := srv.gin.Group(InternalApi + "/cron")
	digestHTTP.New(srv.l, digestUseCase, srv.slack).RegisterRoutes(cron, mw)

	return nil
}
