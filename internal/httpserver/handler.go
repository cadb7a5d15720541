package httpserver

import (
	"net/http"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	alertHTTP "pharmaclear-api/internal/alert/delivery/http"
	"pharmaclear-api/internal/alert/source"
	alertUsecase "pharmaclear-api/internal/alert/usecase"
	"pharmaclear-api/internal/middleware"
	notificationHTTP "pharmaclear-api/internal/notification/delivery/http"
	wsDelivery "pharmaclear-api/internal/notification/delivery/websocket"
	notificationPostgre "pharmaclear-api/internal/notification/repository/postgre"
	notificationUsecase "pharmaclear-api/internal/notification/usecase"
	reportHTTP "pharmaclear-api/internal/report/delivery/http"
	reportUsecase "pharmaclear-api/internal/report/usecase"
	searchHTTP "pharmaclear-api/internal/search/delivery/http"
	searchPostgre "pharmaclear-api/internal/search/repository/postgre"
	searchUsecase "pharmaclear-api/internal/search/usecase"
	userHTTP "pharmaclear-api/internal/user/delivery/http"
	userPostgre "pharmaclear-api/internal/user/repository/postgre"
	userUsecase "pharmaclear-api/internal/user/usecase"
	watchlistHTTP "pharmaclear-api/internal/watchlist/delivery/http"
	watchlistPostgre "pharmaclear-api/internal/watchlist/repository/postgre"
	watchlistUsecase "pharmaclear-api/internal/watchlist/usecase"
)

const apiPrefix = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	srv.registerHealthRoutes()
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.l, srv.jwtManager)
	api := srv.gin.Group(apiPrefix)

	userRepo := userPostgre.New(srv.l, srv.db)
	searchRepo := searchPostgre.New(srv.l, srv.db)
	watchlistRepo := watchlistPostgre.New(srv.l, srv.db)
	notificationRepo := notificationPostgre.New(srv.l, srv.db)

	// Both sources share one client; per-source deadlines are set by the
	// alert usecase.
	httpClient := &http.Client{Timeout: srv.sources.FetchTimeout}
	alertUC := alertUsecase.New(srv.l, srv.sources.FetchTimeout,
		source.NewFDA(httpClient, srv.sources.FDABaseURL),
		source.NewHealthCanada(httpClient, srv.sources.HealthCanadaBaseURL),
	)

	userUC := userUsecase.New(srv.l, userRepo, srv.jwtManager)
	searchUC := searchUsecase.New(srv.l, searchRepo)
	watchlistUC := watchlistUsecase.New(srv.l, watchlistRepo)
	notificationUC := notificationUsecase.New(srv.l, notificationRepo, srv.redis)
	reportUC := reportUsecase.New(srv.l, alertUC, srv.llm, srv.storage, srv.reportBucket)

	userHTTP.New(srv.l, userUC).RegisterRoutes(api, mw)
	alertHTTP.New(srv.l, alertUC).RegisterRoutes(api, mw)
	searchHTTP.New(srv.l, searchUC).RegisterRoutes(api, mw)
	watchlistHTTP.New(srv.l, watchlistUC).RegisterRoutes(api, mw)
	notificationHTTP.New(srv.l, notificationUC).RegisterRoutes(api, mw)
	reportHTTP.New(srv.l, reportUC).RegisterRoutes(api, mw)

	srv.hub = wsDelivery.NewHub(srv.l)
	wsDelivery.NewHandler(srv.l, srv.hub, srv.jwtManager).RegisterRoutes(api)
	srv.subscriber = wsDelivery.NewSubscriber(srv.redis, srv.hub, srv.l)

	return nil
}
