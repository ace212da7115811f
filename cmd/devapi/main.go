// devapi levanta el backend REST en memoria para probar la consola en local.
//
// Uso: go run ./cmd/devapi
// Variables: DEVAPI_ADDR (por defecto :8080), DEVAPI_SECRET, APP_ENV.
// La consola debe apuntar a él con BACKEND_BASE_URL=http://localhost:8080.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/jhoicas/assettrack-console/internal/testutil/fakeapi"
	"github.com/jhoicas/assettrack-console/pkg/logger"
)

func main() {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("DEVAPI_ADDR", ":8080")
	v.SetDefault("DEVAPI_SECRET", "devapi-secret")
	v.SetDefault("APP_ENV", "development")

	log := logger.New(logger.Config{Env: v.GetString("APP_ENV"), Level: "debug"}).Named("devapi")

	backend := fakeapi.New(v.GetString("DEVAPI_SECRET"))
	addr := v.GetString("DEVAPI_ADDR")

	go func() {
		log.Info().Str("addr", addr).
			Str("admin", fakeapi.Admin.Username+"/"+fakeapi.Admin.Password).
			Str("operator", fakeapi.Operator.Username+"/"+fakeapi.Operator.Password).
			Msg("backend de desarrollo escuchando")
		if err := backend.App.Listen(addr); err != nil {
			log.Error().Err(err).Msg("servidor finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := backend.App.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("apagado")
	}
}
