package matcher

// concept is a curated keyword cluster. A query token equal to any keyword
// in the cluster expands to scoring hits for every variant in the cluster.
type concept struct {
	name     string
	keywords []string
}

// concepts is ordered so that scoring reasons come out deterministically.
var concepts = []concept{
	{"bloqueo", []string{
		"bloqueo", "bloqueado", "bloquear", "desbloqueo", "acceso",
		"entrar", "ingresar", "restringido", "inactiva",
	}},
	{"transaccion", []string{
		"transacción", "transferencia", "enviado", "enviar", "recibido",
		"recibir", "movimiento", "dinero", "plata", "yapeo", "pago", "cobro",
	}},
	{"clave", []string{
		"clave", "contraseña", "pin", "olvidé", "cambiar", "restablecer",
		"secreto",
	}},
	{"registro", []string{
		"registro", "registrarme", "crear", "nueva", "afiliarme", "afiliación",
	}},
	{"error", []string{
		"error", "problema", "falla", "fallando", "funciona", "inconveniente",
	}},
	{"datos", []string{
		"datos", "actualizar", "nombre", "correo", "celular", "número",
		"informacion",
	}},
}

func (c concept) contains(token string) bool {
	for _, k := range c.keywords {
		if k == token {
			return true
		}
	}
	return false
}
