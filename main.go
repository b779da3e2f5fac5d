package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalogo/internal/clients"
	intconfig "catalogo/internal/config"
	intdb "catalogo/internal/db"
	router "catalogo/internal/http"
	"catalogo/internal/http/handlers"
	"catalogo/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: falha ao carregar .env: %v", err)
	}

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(intconfig.DB); err != nil {
		log.Fatalf("falha ao preparar o schema: %v", err)
	}

	mail := clients.NewMailPublisher(env.MailAPIURL, env.ClientTimeout)
	defer mail.Close()

	handlers.SetExportDeps(handlers.ExportDeps{
		Pdf:      services.PdfExporter{Dir: env.ExportDir},
		Usuarios: clients.NewUsuarioClient(env.UsuarioAPIURL, env.ClientTimeout),
		Mail:     mail,
	})

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("API de catálogo em http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("falha ao subir o servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Encerrando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown falhou: %v", err)
	}

	log.Println("Servidor encerrado.")
}
