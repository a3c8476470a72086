package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizarena/internal/config"
	"quizarena/internal/questions"
	"quizarena/internal/rooms"
	"quizarena/internal/wshub"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Run() error {
	appCfg, err := config.Load()
	if err != nil {
		return err
	}

	roomCfg := rooms.Config{
		GameDuration: appCfg.GameDuration,
		FinishDelay:  time.Duration(appCfg.FinishDelay) * time.Second,
		TickInterval: time.Second,
	}
	store := rooms.NewStore(roomCfg, questions.Default())

	srv := &Server{
		Rooms: store,
		Hub:   wshub.NewHub(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.HandleFunc("/questions", srv.handleQuestions)
	mux.Handle("/metrics", promhttp.Handler())

	httpSrv := &http.Server{
		Addr:    "0.0.0.0:" + appCfg.Port,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	fmt.Printf("Quiz game server running on port %s\n", appCfg.Port)
	fmt.Printf("WebSocket endpoint: ws://localhost:%s/ws\n", appCfg.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Printf("Received %s, shutting down gracefully...\n", sig)
		srv.Hub.CloseAll()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(ctx)
	}
}
