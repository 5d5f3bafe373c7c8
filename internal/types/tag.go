package types

import "fmt"

// Tag identifies one EXIF field. Values follow the EXIF 2.3 tag table.
//
// GPS and interoperability tags reuse small ids that also appear elsewhere
// (GPSLatitude and InteroperabilityVersion are both 0x0002), so a Tag is
// only unambiguous together with its IFD. Use NameIn for display.
type Tag uint16

// IFD0 / IFD1 tags.
const (
	TagImageWidth                Tag = 0x0100
	TagImageLength               Tag = 0x0101
	TagBitsPerSample             Tag = 0x0102
	TagCompression               Tag = 0x0103
	TagPhotometricInterpretation Tag = 0x0106
	TagImageDescription          Tag = 0x010e
	TagMake                      Tag = 0x010f
	TagModel                     Tag = 0x0110
	TagStripOffsets              Tag = 0x0111
	TagOrientation               Tag = 0x0112
	TagSamplesPerPixel           Tag = 0x0115
	TagRowsPerStrip              Tag = 0x0116
	TagStripByteCounts           Tag = 0x0117
	TagXResolution               Tag = 0x011a
	TagYResolution               Tag = 0x011b
	TagPlanarConfiguration       Tag = 0x011c
	TagResolutionUnit            Tag = 0x0128
	TagTransferFunction          Tag = 0x012d
	TagSoftware                  Tag = 0x0131
	TagDateTime                  Tag = 0x0132
	TagArtist                    Tag = 0x013b
	TagWhitePoint                Tag = 0x013e
	TagPrimaryChromaticities     Tag = 0x013f
	TagJPEGInterchangeFormat     Tag = 0x0201
	TagJPEGInterchangeFormatLen  Tag = 0x0202
	TagYCbCrCoefficients         Tag = 0x0211
	TagYCbCrSubSampling          Tag = 0x0212
	TagYCbCrPositioning          Tag = 0x0213
	TagReferenceBlackWhite       Tag = 0x0214
	TagCopyright                 Tag = 0x8298
	TagExifIFDPointer            Tag = 0x8769
	TagGPSInfoIFDPointer         Tag = 0x8825
)

// EXIF sub-IFD tags.
const (
	TagExposureTime             Tag = 0x829a
	TagFNumber                  Tag = 0x829d
	TagExposureProgram          Tag = 0x8822
	TagSpectralSensitivity      Tag = 0x8824
	TagISOSpeedRatings          Tag = 0x8827
	TagSensitivityType          Tag = 0x8830
	TagExifVersion              Tag = 0x9000
	TagDateTimeOriginal         Tag = 0x9003
	TagDateTimeDigitized        Tag = 0x9004
	TagOffsetTime               Tag = 0x9010
	TagOffsetTimeOriginal       Tag = 0x9011
	TagComponentsConfiguration  Tag = 0x9101
	TagCompressedBitsPerPixel   Tag = 0x9102
	TagShutterSpeedValue        Tag = 0x9201
	TagApertureValue            Tag = 0x9202
	TagBrightnessValue          Tag = 0x9203
	TagExposureBiasValue        Tag = 0x9204
	TagMaxApertureValue         Tag = 0x9205
	TagSubjectDistance          Tag = 0x9206
	TagMeteringMode             Tag = 0x9207
	TagLightSource              Tag = 0x9208
	TagFlash                    Tag = 0x9209
	TagFocalLength              Tag = 0x920a
	TagSubjectArea              Tag = 0x9214
	TagMakerNote                Tag = 0x927c
	TagUserComment              Tag = 0x9286
	TagSubSecTime               Tag = 0x9290
	TagSubSecTimeOriginal       Tag = 0x9291
	TagSubSecTimeDigitized      Tag = 0x9292
	TagFlashpixVersion          Tag = 0xa000
	TagColorSpace               Tag = 0xa001
	TagPixelXDimension          Tag = 0xa002
	TagPixelYDimension          Tag = 0xa003
	TagRelatedSoundFile         Tag = 0xa004
	TagInteroperabilityIFDPtr   Tag = 0xa005
	TagFocalPlaneXResolution    Tag = 0xa20e
	TagFocalPlaneYResolution    Tag = 0xa20f
	TagFocalPlaneResolutionUnit Tag = 0xa210
	TagSensingMethod            Tag = 0xa217
	TagFileSource               Tag = 0xa300
	TagSceneType                Tag = 0xa301
	TagCFAPattern               Tag = 0xa302
	TagCustomRendered           Tag = 0xa401
	TagExposureMode             Tag = 0xa402
	TagWhiteBalance             Tag = 0xa403
	TagDigitalZoomRatio         Tag = 0xa404
	TagFocalLengthIn35mmFilm    Tag = 0xa405
	TagSceneCaptureType         Tag = 0xa406
	TagGainControl              Tag = 0xa407
	TagContrast                 Tag = 0xa408
	TagSaturation               Tag = 0xa409
	TagSharpness                Tag = 0xa40a
	TagSubjectDistanceRange     Tag = 0xa40c
	TagImageUniqueID            Tag = 0xa420
	TagCameraOwnerName          Tag = 0xa430
	TagBodySerialNumber         Tag = 0xa431
	TagLensSpecification        Tag = 0xa432
	TagLensMake                 Tag = 0xa433
	TagLensModel                Tag = 0xa434
	TagLensSerialNumber         Tag = 0xa435
)

// GPS sub-IFD tags.
const (
	TagGPSVersionID        Tag = 0x0000
	TagGPSLatitudeRef      Tag = 0x0001
	TagGPSLatitude         Tag = 0x0002
	TagGPSLongitudeRef     Tag = 0x0003
	TagGPSLongitude        Tag = 0x0004
	TagGPSAltitudeRef      Tag = 0x0005
	TagGPSAltitude         Tag = 0x0006
	TagGPSTimeStamp        Tag = 0x0007
	TagGPSSatellites       Tag = 0x0008
	TagGPSStatus           Tag = 0x0009
	TagGPSMeasureMode      Tag = 0x000a
	TagGPSDOP              Tag = 0x000b
	TagGPSSpeedRef         Tag = 0x000c
	TagGPSSpeed            Tag = 0x000d
	TagGPSTrackRef         Tag = 0x000e
	TagGPSTrack            Tag = 0x000f
	TagGPSImgDirectionRef  Tag = 0x0010
	TagGPSImgDirection     Tag = 0x0011
	TagGPSMapDatum         Tag = 0x0012
	TagGPSDestLatitudeRef  Tag = 0x0013
	TagGPSDestLatitude     Tag = 0x0014
	TagGPSDestLongitudeRef Tag = 0x0015
	TagGPSDestLongitude    Tag = 0x0016
	TagGPSDateStamp        Tag = 0x001d
	TagGPSDifferential     Tag = 0x001e
)

// Interoperability sub-IFD tags.
const (
	TagInteroperabilityIndex   Tag = 0x0001
	TagInteroperabilityVersion Tag = 0x0002
)

var tagNames = map[Tag]string{
	TagImageWidth:                "ImageWidth",
	TagImageLength:               "ImageLength",
	TagBitsPerSample:             "BitsPerSample",
	TagCompression:               "Compression",
	TagPhotometricInterpretation: "PhotometricInterpretation",
	TagImageDescription:          "ImageDescription",
	TagMake:                      "Make",
	TagModel:                     "Model",
	TagStripOffsets:              "StripOffsets",
	TagOrientation:               "Orientation",
	TagSamplesPerPixel:           "SamplesPerPixel",
	TagRowsPerStrip:              "RowsPerStrip",
	TagStripByteCounts:           "StripByteCounts",
	TagXResolution:               "XResolution",
	TagYResolution:               "YResolution",
	TagPlanarConfiguration:       "PlanarConfiguration",
	TagResolutionUnit:            "ResolutionUnit",
	TagTransferFunction:          "TransferFunction",
	TagSoftware:                  "Software",
	TagDateTime:                  "DateTime",
	TagArtist:                    "Artist",
	TagWhitePoint:                "WhitePoint",
	TagPrimaryChromaticities:     "PrimaryChromaticities",
	TagJPEGInterchangeFormat:     "JPEGInterchangeFormat",
	TagJPEGInterchangeFormatLen:  "JPEGInterchangeFormatLength",
	TagYCbCrCoefficients:         "YCbCrCoefficients",
	TagYCbCrSubSampling:          "YCbCrSubSampling",
	TagYCbCrPositioning:          "YCbCrPositioning",
	TagReferenceBlackWhite:       "ReferenceBlackWhite",
	TagCopyright:                 "Copyright",
	TagExifIFDPointer:            "ExifIFDPointer",
	TagGPSInfoIFDPointer:         "GPSInfoIFDPointer",

	TagExposureTime:             "ExposureTime",
	TagFNumber:                  "FNumber",
	TagExposureProgram:          "ExposureProgram",
	TagSpectralSensitivity:      "SpectralSensitivity",
	TagISOSpeedRatings:          "ISOSpeedRatings",
	TagSensitivityType:          "SensitivityType",
	TagExifVersion:              "ExifVersion",
	TagDateTimeOriginal:         "DateTimeOriginal",
	TagDateTimeDigitized:        "DateTimeDigitized",
	TagOffsetTime:               "OffsetTime",
	TagOffsetTimeOriginal:       "OffsetTimeOriginal",
	TagComponentsConfiguration:  "ComponentsConfiguration",
	TagCompressedBitsPerPixel:   "CompressedBitsPerPixel",
	TagShutterSpeedValue:        "ShutterSpeedValue",
	TagApertureValue:            "ApertureValue",
	TagBrightnessValue:          "BrightnessValue",
	TagExposureBiasValue:        "ExposureBiasValue",
	TagMaxApertureValue:         "MaxApertureValue",
	TagSubjectDistance:          "SubjectDistance",
	TagMeteringMode:             "MeteringMode",
	TagLightSource:              "LightSource",
	TagFlash:                    "Flash",
	TagFocalLength:              "FocalLength",
	TagSubjectArea:              "SubjectArea",
	TagMakerNote:                "MakerNote",
	TagUserComment:              "UserComment",
	TagSubSecTime:               "SubSecTime",
	TagSubSecTimeOriginal:       "SubSecTimeOriginal",
	TagSubSecTimeDigitized:      "SubSecTimeDigitized",
	TagFlashpixVersion:          "FlashpixVersion",
	TagColorSpace:               "ColorSpace",
	TagPixelXDimension:          "PixelXDimension",
	TagPixelYDimension:          "PixelYDimension",
	TagRelatedSoundFile:         "RelatedSoundFile",
	TagInteroperabilityIFDPtr:   "InteroperabilityIFDPointer",
	TagFocalPlaneXResolution:    "FocalPlaneXResolution",
	TagFocalPlaneYResolution:    "FocalPlaneYResolution",
	TagFocalPlaneResolutionUnit: "FocalPlaneResolutionUnit",
	TagSensingMethod:            "SensingMethod",
	TagFileSource:               "FileSource",
	TagSceneType:                "SceneType",
	TagCFAPattern:               "CFAPattern",
	TagCustomRendered:           "CustomRendered",
	TagExposureMode:             "ExposureMode",
	TagWhiteBalance:             "WhiteBalance",
	TagDigitalZoomRatio:         "DigitalZoomRatio",
	TagFocalLengthIn35mmFilm:    "FocalLengthIn35mmFilm",
	TagSceneCaptureType:         "SceneCaptureType",
	TagGainControl:              "GainControl",
	TagContrast:                 "Contrast",
	TagSaturation:               "Saturation",
	TagSharpness:                "Sharpness",
	TagSubjectDistanceRange:     "SubjectDistanceRange",
	TagImageUniqueID:            "ImageUniqueID",
	TagCameraOwnerName:          "CameraOwnerName",
	TagBodySerialNumber:         "BodySerialNumber",
	TagLensSpecification:        "LensSpecification",
	TagLensMake:                 "LensMake",
	TagLensModel:                "LensModel",
	TagLensSerialNumber:         "LensSerialNumber",
}

var gpsTagNames = map[Tag]string{
	TagGPSVersionID:        "GPSVersionID",
	TagGPSLatitudeRef:      "GPSLatitudeRef",
	TagGPSLatitude:         "GPSLatitude",
	TagGPSLongitudeRef:     "GPSLongitudeRef",
	TagGPSLongitude:        "GPSLongitude",
	TagGPSAltitudeRef:      "GPSAltitudeRef",
	TagGPSAltitude:         "GPSAltitude",
	TagGPSTimeStamp:        "GPSTimeStamp",
	TagGPSSatellites:       "GPSSatellites",
	TagGPSStatus:           "GPSStatus",
	TagGPSMeasureMode:      "GPSMeasureMode",
	TagGPSDOP:              "GPSDOP",
	TagGPSSpeedRef:         "GPSSpeedRef",
	TagGPSSpeed:            "GPSSpeed",
	TagGPSTrackRef:         "GPSTrackRef",
	TagGPSTrack:            "GPSTrack",
	TagGPSImgDirectionRef:  "GPSImgDirectionRef",
	TagGPSImgDirection:     "GPSImgDirection",
	TagGPSMapDatum:         "GPSMapDatum",
	TagGPSDestLatitudeRef:  "GPSDestLatitudeRef",
	TagGPSDestLatitude:     "GPSDestLatitude",
	TagGPSDestLongitudeRef: "GPSDestLongitudeRef",
	TagGPSDestLongitude:    "GPSDestLongitude",
	TagGPSDateStamp:        "GPSDateStamp",
	TagGPSDifferential:     "GPSDifferential",
}

var interopTagNames = map[Tag]string{
	TagInteroperabilityIndex:   "InteroperabilityIndex",
	TagInteroperabilityVersion: "InteroperabilityVersion",
}

// String returns the tag name for IFD0/IFD1/EXIF tags, or the hex id.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(t))
}

// NameIn returns the tag name as interpreted inside ifd.
func (t Tag) NameIn(ifd IFD) string {
	switch ifd {
	case IFDGPS:
		if name, ok := gpsTagNames[t]; ok {
			return name
		}
	case IFDInteroperability:
		if name, ok := interopTagNames[t]; ok {
			return name
		}
	}
	return t.String()
}
