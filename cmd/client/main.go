package client

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/chatterd/chatterd/client/connector"
	"github.com/chatterd/chatterd/client/session"
	pb "github.com/chatterd/chatterd/gen/chat"
	"github.com/chatterd/chatterd/pkg/flags"
)

// Main executes the client subcommand: a line-oriented shell over the chat
// service, mostly useful for driving a cluster by hand.
func Main(args []string) {
	cmd := flag.NewFlagSet("client", flag.ExitOnError)

	ip := cmd.String("ip", "", "server address to try first")
	port := cmd.String("port", "5001", "server port to try first")
	configPath := cmd.String("config", "servers.yml", "path to the YAML server list")

	flags.ConfigureAndParse(cmd, args)

	if *ip == "" {
		log.Fatal("-ip is required")
	}

	addrs := []connector.Address{{IP: *ip, Port: *port}}
	if cfg, err := connector.LoadConfig(*configPath); err != nil {
		log.Warnf("no server list loaded: %s", err)
	} else {
		for _, a := range cfg.Servers {
			if a != addrs[0] {
				addrs = append(addrs, a)
			}
		}
	}

	conn := connector.New(addrs, nil)
	defer conn.Close()
	sess := session.New(conn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var username string
	var monitorCancel context.CancelFunc

	fmt.Println("commands: register <user> <password> <email> | login <user> <password> | send <user> <body...> | users | inbox | history | settings [n] | delete | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "register":
			if len(fields) != 4 {
				fmt.Println("usage: register <user> <password> <email>")
				continue
			}
			if err := sess.Register(ctx, fields[1], fields[2], fields[3]); err != nil {
				fmt.Printf("registration failed: %s\n", err)
				continue
			}
			fmt.Println("registered")

		case "login":
			if len(fields) != 3 {
				fmt.Println("usage: login <user> <password>")
				continue
			}
			if err := sess.Login(ctx, fields[1], fields[2]); err != nil {
				fmt.Printf("login failed: %s\n", err)
				continue
			}
			username = fields[1]
			if monitorCancel != nil {
				monitorCancel()
			}
			var mctx context.Context
			mctx, monitorCancel = context.WithCancel(ctx)
			go sess.Monitor(mctx, username, func(m *pb.ChatMessage) {
				fmt.Printf("\n[%s] %s: %s\n> ", m.GetTimestamp(), m.GetSender(), m.GetBody())
			})
			fmt.Println("logged in")

		case "send":
			if username == "" {
				fmt.Println("login first")
				continue
			}
			if len(fields) < 3 {
				fmt.Println("usage: send <user> <body...>")
				continue
			}
			body := strings.Join(fields[2:], " ")
			if err := sess.Send(ctx, username, fields[1], body); err != nil {
				fmt.Printf("send failed: %s\n", err)
				continue
			}
			fmt.Println("sent")

		case "users":
			users, err := sess.Users(ctx, username)
			if err != nil {
				fmt.Printf("failed to list users: %s\n", err)
				continue
			}
			for _, u := range users {
				fmt.Println(u)
			}

		case "inbox":
			if username == "" {
				fmt.Println("login first")
				continue
			}
			limit, err := sess.Settings(ctx, username)
			if err != nil {
				fmt.Printf("failed to read settings: %s\n", err)
				continue
			}
			msgs, err := sess.Inbox(ctx, username, limit)
			if err != nil {
				fmt.Printf("failed to read inbox: %s\n", err)
				continue
			}
			for _, m := range msgs {
				fmt.Printf("[%s] %s: %s\n", m.GetTimestamp(), m.GetSender(), m.GetBody())
			}
			fmt.Printf("%d message(s)\n", len(msgs))

		case "history":
			if username == "" {
				fmt.Println("login first")
				continue
			}
			msgs, err := sess.History(ctx, username)
			if err != nil {
				fmt.Printf("failed to read history: %s\n", err)
				continue
			}
			for _, m := range msgs {
				fmt.Printf("[%s] %s -> %s: %s\n", m.GetTimestamp(), m.GetSender(), m.GetRecipient(), m.GetBody())
			}

		case "settings":
			if username == "" {
				fmt.Println("login first")
				continue
			}
			if len(fields) == 1 {
				limit, err := sess.Settings(ctx, username)
				if err != nil {
					fmt.Printf("failed to read settings: %s\n", err)
					continue
				}
				fmt.Printf("inbox limit: %d\n", limit)
				continue
			}
			limit, err := strconv.Atoi(fields[1])
			if err != nil || limit <= 0 {
				fmt.Println("usage: settings [positive-limit]")
				continue
			}
			if err := sess.SaveSettings(ctx, username, limit); err != nil {
				fmt.Printf("failed to save settings: %s\n", err)
				continue
			}
			fmt.Println("saved")

		case "delete":
			if username == "" {
				fmt.Println("login first")
				continue
			}
			if err := sess.DeleteAccount(ctx, username); err != nil {
				fmt.Printf("failed to delete account: %s\n", err)
				continue
			}
			if monitorCancel != nil {
				monitorCancel()
				monitorCancel = nil
			}
			username = ""
			fmt.Println("account deleted")

		case "quit", "exit":
			return

		default:
			fmt.Printf("unknown command: %s\n", fields[0])
		}
	}
}
