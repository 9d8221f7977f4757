package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		cmd := Parse(`{"action":"CREATE_ACCOUNT","data":{"name":"Nubank","initial_balance":500},"message":"Conta criada!"}`)

		require.Equal(t, ActionCreateAccount, cmd.Action)
		assert.Equal(t, "Conta criada!", cmd.Message)
		assert.NotEmpty(t, cmd.Data)
	})

	t.Run("json wrapped in markdown fences", func(t *testing.T) {
		raw := "```json\n{\"action\":\"QUERY\",\"message\":\"Seu saldo total é 500€.\"}\n```"
		cmd := Parse(raw)

		assert.Equal(t, ActionQuery, cmd.Action)
		assert.Equal(t, "Seu saldo total é 500€.", cmd.Message)
	})

	t.Run("json surrounded by prose", func(t *testing.T) {
		raw := "Claro! Aqui está:\n{\"action\":\"RESET_DATA\",\"message\":\"ok\"}\nEspero ter ajudado."
		cmd := Parse(raw)

		assert.Equal(t, ActionResetData, cmd.Action)
	})

	t.Run("category fields are carried", func(t *testing.T) {
		cmd := Parse(`{"action":"CREATE_TRANSACTION","data":{"title":"Mercado","amount":25.5},"message":"ok","category":"alimentacao","subcategory":"supermercado","confidence":0.95}`)

		assert.Equal(t, "alimentacao", cmd.Category)
		assert.Equal(t, "supermercado", cmd.Subcategory)
		assert.InDelta(t, 0.95, cmd.Confidence, 0.001)
	})

	t.Run("plain text degrades to an error command", func(t *testing.T) {
		cmd := Parse("Desculpe, não entendi o seu pedido.")

		assert.Equal(t, ActionError, cmd.Action)
		assert.Equal(t, "Desculpe, não entendi o seu pedido.", cmd.Message)
	})

	t.Run("malformed json degrades to an error command", func(t *testing.T) {
		raw := `{"action":"CREATE_ACCOUNT","data":{`
		cmd := Parse(raw)

		assert.Equal(t, ActionError, cmd.Action)
		assert.Equal(t, raw, cmd.Message)
	})

	t.Run("json without an action degrades to an error command", func(t *testing.T) {
		cmd := Parse(`{"message":"hello"}`)

		assert.Equal(t, ActionError, cmd.Action)
	})
}
