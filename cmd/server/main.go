package server

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/chatterd/chatterd/pkg/admin"
	"github.com/chatterd/chatterd/pkg/flags"
	"github.com/chatterd/chatterd/server/api"
	"github.com/chatterd/chatterd/server/auth"
	"github.com/chatterd/chatterd/server/delivery"
	"github.com/chatterd/chatterd/server/membership"
	"github.com/chatterd/chatterd/server/replication"
	"github.com/chatterd/chatterd/server/store"
)

// Main executes the server subcommand
func Main(args []string) {
	cmd := flag.NewFlagSet("server", flag.ExitOnError)

	ip := cmd.String("ip", "", "address to bind and advertise to peers")
	port := cmd.String("port", "5001", "port to serve on")
	ipConnect := cmd.String("ip_connect", "", "bootstrap server address to join the cluster through")
	portConnect := cmd.String("port_connect", "", "bootstrap server port to join the cluster through")
	metricsAddr := cmd.String("metrics-addr", ":9990", "address to serve scrapable metrics on")
	dataDir := cmd.String("data-dir", ".", "directory holding this server's database file")
	enablePprof := cmd.Bool("enable-pprof", false, "Enable pprof endpoints on the admin server")

	flags.ConfigureAndParse(cmd, args)

	if *ip == "" {
		log.Fatal("-ip is required")
	}

	serverID := uuid.New().String()
	log.Infof("starting server %s on %s:%s", serverID, *ip, *port)

	st, err := store.Open(*dataDir, *ip, *port)
	if err != nil {
		log.Fatalf("Failed to open store: %s", err)
	}
	defer st.Close()

	members := membership.New(serverID, *ip, *port, api.NewClient)
	hub := delivery.NewHub(st)
	repl := replication.New(members)

	lis, err := net.Listen("tcp", net.JoinHostPort(*ip, *port))
	if err != nil {
		log.Fatalf("Failed to listen on %s:%s: %s", *ip, *port, err)
	}

	srv := api.NewServer(lis.Addr().String(), st, auth.New(st), hub, members, repl)

	ready := false
	adminServer := admin.NewServer(*metricsAddr, *enablePprof, &ready)

	go func() {
		log.Infof("starting admin server on %s", *metricsAddr)
		if err := adminServer.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Infof("Admin server closed (%s)", *metricsAddr)
			} else {
				log.Errorf("Admin server error (%s): %s", *metricsAddr, err)
			}
		}
	}()

	go func() {
		log.Infof("starting gRPC server on %s", lis.Addr())
		if err := srv.Serve(lis); err != nil {
			log.Errorf("gRPC server error: %s", err)
		}
	}()

	if *ipConnect != "" && *portConnect != "" {
		if err := members.Join(*ipConnect, *portConnect); err != nil {
			log.Fatalf("Failed to join cluster via %s:%s: %s", *ipConnect, *portConnect, err)
		}
	} else {
		if err := members.BecomeLeader(); err != nil {
			log.Fatalf("Failed to assume initial leadership: %s", err)
		}
	}
	members.Start()
	ready = true

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	members.Close()
	hub.CloseAll()
	srv.GracefulStop()
	adminServer.Shutdown(context.Background())
}
