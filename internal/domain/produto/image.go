package produto

import "fmt"

// ImageName é o nome do arquivo de imagem do produto. A relação é
// calculada a partir do id e nunca gravada no banco.
func ImageName(id uint) string {
	return fmt.Sprintf("%04d.jpg", id)
}
