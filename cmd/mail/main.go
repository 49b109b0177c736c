package main

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fuyo-dev/shift-scheduler/backend/internal/config"
	"github.com/fuyo-dev/shift-scheduler/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"
)

func main() {
	/**********************************************
	 * logger の作成
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * 設定の読み込み
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("設定を読み込めません", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * メールクライアントの作成
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("メールクライアントを作成できません", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// メールサーバーに接続できることを確認する
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("メールサーバーに接続できません", slog.String("error", err.Error()))
		return
	}

	// 後のデコードのために gob に mail.Msg 型を登録しておく
	gob.Register(mail.NewMsg())

	/**********************************************
	 * RabbitMQ への接続
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("RabbitMQ に接続できません", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("チャネルを作成できません", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"mail_queue", // キュー名
		true,         // 永続化する
		false,        // 消費者がいなくてもキューを自動削除しない
		false,        // 排他的にしない
		false,        // RabbitMQ の作成確認を待つ
		nil,          // 追加パラメータ
	)
	if err != nil {
		logger.Error("キューを宣言できません", slog.String("error", err.Error()))
		return
	}

	// CTRL+C を待ち受ける
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// メッセージを消費する
	msgs, err := ch.Consume(
		q.Name, // キュー
		"",     // 消費者タグは RabbitMQ に自動で割り当てさせる
		false,  // 自動 ack しない
		false,  // キューを排他的にしない
		false,  // RabbitMQ は no-local をサポートしないため false
		false,  // RabbitMQ の応答を待つ
		nil,    // 追加パラメータ
	)
	if err != nil {
		logger.Error("メッセージを消費できません", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// goroutine 停止用のコンテキスト
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("メッセージを受信しました", slog.String("message", string(msg.Body)))
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("メール情報のデコードに失敗しました", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// メールを組み立てる
				mail := mail.NewMsg()
				if err := mail.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("メールの差出人を設定できません", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := mail.To(mailMessage.To); err != nil {
					logger.Error("メールの宛先を設定できません", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// メール種別ごとにテンプレートを解決する
				switch mailMessage.Type {
				case "create_manager":
					tmpl, err := template.ParseFiles("./templates/new_manager_email.html")
					if err != nil {
						logger.Error("メールテンプレートを解析できません", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := mail.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("メール本文を設定できません", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					mail.Subject("シフト管理システム - アカウント情報")
				case "reset_password":
					tmpl, err := template.ParseFiles("./templates/reset_password_otp_email.html")
					if err != nil {
						logger.Error("メールテンプレートを解析できません", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := mail.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("メール本文を設定できません", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					mail.Subject("シフト管理システム - パスワード再設定")
				case "change_email":
					tmpl, err := template.ParseFiles("./templates/change_email_email.html")
					if err != nil {
						logger.Error("メールテンプレートを解析できません", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := mail.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("メール本文を設定できません", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					mail.Subject("シフト管理システム - メールアドレス変更")
				case "schedule_published":
					tmpl, err := template.ParseFiles("./templates/schedule_published_email.html")
					if err != nil {
						logger.Error("メールテンプレートを解析できません", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := mail.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("メール本文を設定できません", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					mail.Subject("シフト管理システム - シフト公開のお知らせ")
				default:
					logger.Error("サポートされていないメール種別です", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				// メールを送信する
				if err := client.DialAndSend(mail); err != nil {
					logger.Error("メールの送信に失敗しました", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // 再度キューに入れる
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	// CTRL+C を待つ
	logger.Info("メッセージを待っています...（CTRL+C で終了）")
	<-sigChan

	// グレースフルに終了する
	slog.Info("mail worker を停止しています...")
	cancel()
	wg.Wait()
	slog.Info("mail worker を停止しました")
}
