package beans

import (
	"fmt"

	"github.com/Alia5/beangen/internal/diag"
)

// Format identifies a documentation comment template for generated members.
type Format int

const (
	JDOC0000 Format = iota // getter
	JDOC0001               // indexed getter
	JDOC0002               // setter
	JDOC0003               // indexed setter
	JDOC0004               // constrained setter
	JDOC0005               // constrained indexed setter
	JDOC0006               // add listener
	JDOC0007               // add listener for a named property
	JDOC0008               // remove listener
	JDOC0009               // remove listener for a named property
	JDOC0010               // add listener for this property
	JDOC0011               // remove listener for this property

	numFormats
)

// Templates take %[1]s as the property doc (or listener type) and %[2]s as
// the property name (or property doc for JDOC0010/JDOC0011). Each line
// starts with a space so the rendered comment reads " * text".
var formats = [numFormats][2]string{
	JDOC0000: {
		" Return the {@literal %[1]s}.\n \n @return the {@literal %[1]s}.\n",
		" {@literal %[1]s} を返します。\n \n @return {@literal %[1]s}\n",
	},
	JDOC0001: {
		" Return the nth {@literal %[1]s}.\n \n" +
			" @param n the index of the {@literal %[1]s} to get.\n" +
			" @return the {@literal n}<sup>th</sup> {@literal %[1]s}.\n" +
			" @throws ArrayIndexOutOfBoundsException an index is used that is outside the current array bounds\n",
		" {@literal %[1]s} の {@literal n} 番目の要素を返します。\n \n" +
			" @param n 返される要素のインデックス\n" +
			" @return {@literal n} 番目の {@literal %[1]s}\n" +
			" @throws ArrayIndexOutOfBoundsException インデックスが配列のサイズを超えていた場合\n",
	},
	JDOC0002: {
		" Set the {@literal %[1]s}.\n \n @param %[2]s the {@literal %[1]s}.\n",
		" {@literal %[1]s} を設定します。\n \n @param %[2]s {@literal %[1]s}\n",
	},
	JDOC0003: {
		" Set the {@literal n}<sup>th</sup> {@literal %[1]s}.\n \n" +
			" @param n {@literal n}<sup>th</sup> of the {@literal %[1]s} to set.\n" +
			" @param %[2]s {@literal %[1]s}\n" +
			" @throws ArrayIndexOutOfBoundsException an index is used that is outside the current array bounds\n",
		" {@literal %[1]s} の {@literal n} 番目の要素を設定します。\n \n" +
			" @param n 設定される要素のインデックス\n" +
			" @param %[2]s {@literal %[1]s}\n" +
			" @throws ArrayIndexOutOfBoundsException インデックスが配列のサイズを超えていた場合\n",
	},
	JDOC0004: {
		" Set the {@literal %[1]s}.\n \n @param %[2]s the {@literal %[1]s}.\n" +
			" @throws java.beans.PropertyVetoException if the recipient wishes the property change to be rolled back.\n",
		" {@literal %[1]s} を設定します。\n \n" +
			" @param %[2]s {@literal %[1]s}\n" +
			" @throws java.beans.PropertyVetoException プロパティの変更が拒否された場合\n",
	},
	JDOC0005: {
		" Set the {@literal n}<sup>th</sup> {@literal %[1]s}.\n \n" +
			" @param n {@literal n}<sup>th</sup> of the {@literal %[1]s} to set.\n" +
			" @param %[2]s {@literal %[1]s}\n" +
			" @throws ArrayIndexOutOfBoundsException an index is used that is outside the current array bounds.\n" +
			" @throws java.beans.PropertyVetoException if the recipient wishes the property change to be rolled back.\n",
		" {@literal %[1]s} の {@literal n} 番目の要素を設定します。\n \n" +
			" @param n 設定される要素のインデックス\n" +
			" @param %[2]s {@literal %[1]s}\n" +
			" @throws ArrayIndexOutOfBoundsException インデックスが配列のサイズを超えていた場合\n" +
			" @throws java.beans.PropertyVetoException プロパティの変更が拒否された場合\n",
	},
	JDOC0006: {
		" Add a {@link %[1]s} to the listener list.\n \n" +
			" @param listener The {@link %[1]s} to be added\n",
		" {@link %[1]s} をリスナーリストに追加します。\n \n" +
			" @param listener 追加する {@link %[1]s}\n",
	},
	JDOC0007: {
		" Add a {@link %[1]s} for a specific property.\n \n" +
			" @param propertyName The name of the property to listen on.\n" +
			" @param listener The {@link %[1]s} to be added\n",
		" 特定のプロパティーの {@link %[1]s} をリスナーリストに追加します。\n \n" +
			" @param propertyName 待機しているプロパティーの名前\n" +
			" @param listener 追加する {@link %[1]s}\n",
	},
	JDOC0008: {
		" Remove a {@link %[1]s} from the listener list.\n \n" +
			" @param listener The {@link %[1]s} to be removed\n",
		" {@link %[1]s} をリスナーリストから削除します。\n \n" +
			" @param listener 削除する {@link %[1]s}\n",
	},
	JDOC0009: {
		" Remove a {@link %[1]s} for a specific property.\n \n" +
			" @param propertyName The name of the property that was listened on.\n" +
			" @param listener The {@link %[1]s} to be removed\n",
		" 特定のプロパティーの {@link %[1]s} をリスナーリストから削除します。\n \n" +
			" @param propertyName 待機していたプロパティーの名前\n" +
			" @param listener 削除する {@link %[1]s}\n",
	},
	JDOC0010: {
		" Add a {@link %[1]s} for the {@literal %[2]s}.\n \n" +
			" @param listener The {@link %[1]s} to be added\n",
		" {@literal %[2]s} の {@link %[1]s} をリスナーリストに追加します。\n \n" +
			" @param listener 追加する {@link %[1]s}\n",
	},
	JDOC0011: {
		" Remove a {@link %[1]s} for the {@literal %[2]s}.\n \n" +
			" @param listener The {@link %[1]s} to be removed\n",
		" {@literal %[2]s} の {@link %[1]s} をリスナーリストから削除します。\n \n" +
			" @param listener 削除する {@link %[1]s}\n",
	},
}

func (f Format) String() string {
	if f < 0 || f >= numFormats {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return fmt.Sprintf("JDOC%04d", int(f))
}

// Template returns the raw template for loc.
func (f Format) Template(loc diag.Locale) string {
	if f < 0 || f >= numFormats {
		return ""
	}
	if loc == diag.Japanese {
		return formats[f][1]
	}
	return formats[f][0]
}

// Render substitutes args into the template for loc.
func (f Format) Render(loc diag.Locale, args ...any) string {
	return fmt.Sprintf(f.Template(loc), args...)
}
