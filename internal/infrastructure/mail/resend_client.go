// Package mail envía los recordatorios por email vía la API HTTP de Resend
// (https://resend.com). No hay SDK oficial involucrado: el endpoint es un POST
// JSON simple y un cliente net/http con timeout alcanza.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/contaflow-api/internal/application/tasks"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
	"github.com/jhoicas/contaflow-api/pkg/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// Asegura que ResendClient implementa tasks.ReminderMailer.
var _ tasks.ReminderMailer = (*ResendClient)(nil)

// ResendClient envía emails transaccionales vía Resend.
type ResendClient struct {
	cfg    config.MailConfig
	client *http.Client
}

// NewResendClient construye el cliente de correo.
func NewResendClient(cfg config.MailConfig) *ResendClient {
	return &ResendClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendReminder envía el recordatorio de una tarea. El asunto y el cuerpo van en
// rumano, el idioma de los destinatarios del producto.
func (c *ResendClient) SendReminder(ctx context.Context, to string, cand repository.ReminderCandidate) error {
	if !c.cfg.Enabled {
		return fmt.Errorf("envío de correo deshabilitado (MAIL_ENABLED=false)")
	}
	if c.cfg.APIKey == "" {
		return fmt.Errorf("RESEND_API_KEY no configurado")
	}

	payload := sendRequest{
		From:    c.cfg.From,
		To:      []string{to},
		Subject: subjectFor(cand),
		HTML:    bodyFor(cand),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializar email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("enviar email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend respondió %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}

// subjectFor arma el asunto según la distancia al vencimiento.
func subjectFor(cand repository.ReminderCandidate) string {
	due := cand.DueDate.Format("02.01.2006")
	switch cand.ReminderType {
	case entity.ReminderType7Days:
		return fmt.Sprintf("⏰ %s — scadență în 7 zile (%s)", cand.TaskTitle, due)
	case entity.ReminderType3Days:
		return fmt.Sprintf("⏰ %s — scadență în 3 zile (%s)", cand.TaskTitle, due)
	case entity.ReminderType1Day:
		return fmt.Sprintf("⚠️ %s — scadență mâine (%s)", cand.TaskTitle, due)
	case entity.ReminderTypeDue:
		return fmt.Sprintf("🔴 %s — scadența este astăzi", cand.TaskTitle)
	case entity.ReminderTypeOverdue:
		return fmt.Sprintf("🔴 %s — termen depășit (%s)", cand.TaskTitle, due)
	}
	return fmt.Sprintf("Memento: %s (%s)", cand.TaskTitle, due)
}

// bodyFor arma el cuerpo HTML del recordatorio.
func bodyFor(cand repository.ReminderCandidate) string {
	var lead string
	switch {
	case cand.DaysUntilDue > 1:
		lead = fmt.Sprintf("Obligația de mai jos are scadența în %d zile.", cand.DaysUntilDue)
	case cand.DaysUntilDue == 1:
		lead = "Obligația de mai jos are scadența mâine."
	case cand.DaysUntilDue == 0:
		lead = "Obligația de mai jos are scadența astăzi."
	default:
		lead = "Obligația de mai jos are termenul depășit. Vă rugăm să o finalizați cât mai curând."
	}

	return fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 560px;">
			<p>Bună ziua,</p>
			<p>%s</p>
			<table style="border-collapse: collapse; margin: 12px 0;">
				<tr><td style="padding: 4px 12px 4px 0; color: #666;">Firmă:</td><td><strong>%s</strong></td></tr>
				<tr><td style="padding: 4px 12px 4px 0; color: #666;">Obligație:</td><td><strong>%s</strong></td></tr>
				<tr><td style="padding: 4px 12px 4px 0; color: #666;">Scadență:</td><td><strong>%s</strong></td></tr>
			</table>
			<p style="color: #888; font-size: 12px;">Acest mesaj a fost trimis automat de ContaFlow.
			Puteți dezactiva memento-urile din setările contului.</p>
		</div>`,
		lead, cand.CompanyName, cand.TaskTitle, cand.DueDate.Format("02.01.2006"),
	)
}
